package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/stylematch/stylematch-api/internal/audit"
	domain "github.com/stylematch/stylematch-api/internal/domain/account"
	"github.com/stylematch/stylematch-api/internal/httperr"
	"github.com/stylematch/stylematch-api/internal/models"
)

type ClientHandler struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewClientHandler(repo domain.Repository, auditRec audit.Recorder) *ClientHandler {
	return &ClientHandler{repo: repo, audit: auditRec}
}

type UpdateClientProfileRequest struct {
	Country          *string           `json:"country" binding:"omitempty,max=100"`
	City             *string           `json:"city" binding:"omitempty,max=100"`
	BodyType         *string           `json:"body_type" binding:"omitempty,max=100"`
	Colors           *models.ColorList `json:"colors"`
	MessageToStylist *string           `json:"message_to_stylist" binding:"omitempty,max=1000"`
}

type ChooseStylistRequest struct {
	StylistID uint `json:"stylist_id" binding:"required"`
}

// ======================================================
// UPDATE PROFILE (CLIENT)
// ======================================================
func (h *ClientHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req UpdateClientProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.repo.FindClientByUserID(c.Request.Context(), userID)
	if err != nil {
		// A client-role user without a client row is a data-integrity
		// anomaly; surface it, never create a row here.
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "client_profile_not_found", "Client profile not found.")
			return
		}
		httperr.Internal(c, "failed_to_load_client", "Failed to load client profile.")
		return
	}

	if req.Country != nil {
		client.Country = *req.Country
	}
	if req.City != nil {
		client.City = *req.City
	}
	if req.BodyType != nil {
		client.BodyType = *req.BodyType
	}
	if req.Colors != nil {
		client.Colors = *req.Colors
	}
	if req.MessageToStylist != nil {
		client.MessageToStylist = *req.MessageToStylist
	}

	if err := h.repo.SaveClient(c.Request.Context(), client); err != nil {
		httperr.Internal(c, "failed_to_update_client", "Failed to update client profile.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "client_profile_updated",
		Entity:   "client",
		EntityID: &client.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Client profile updated successfully!",
		"client":  client,
	})
}

// ======================================================
// CHOOSE STYLIST (CLIENT)
// ======================================================
func (h *ClientHandler) ChooseStylist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req ChooseStylistRequest
	if !bindJSON(c, &req) {
		return
	}

	// Validated before any write: a bad stylist_id leaves the client's
	// current choice untouched.
	exists, err := h.repo.StylistExists(c.Request.Context(), req.StylistID)
	if err != nil {
		httperr.Internal(c, "failed_to_check_stylist", "Failed to check stylist.")
		return
	}
	if !exists {
		httperr.ValidationField(c, "stylist_id", "The selected stylist does not exist.")
		return
	}

	client, err := h.repo.FindClientByUserID(c.Request.Context(), userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "client_profile_not_found", "Client profile not found.")
			return
		}
		httperr.Internal(c, "failed_to_load_client", "Failed to load client profile.")
		return
	}

	client.StylistID = &req.StylistID
	if err := h.repo.SaveClient(c.Request.Context(), client); err != nil {
		httperr.Internal(c, "failed_to_choose_stylist", "Failed to choose stylist.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "stylist_chosen",
		Entity:   "client",
		EntityID: &client.ID,
		Metadata: gin.H{"stylist_id": req.StylistID},
	})

	c.JSON(http.StatusOK, gin.H{"message": "Stylist chosen successfully!"})
}
