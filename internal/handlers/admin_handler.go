package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/stylematch/stylematch-api/internal/domain/account"
	"github.com/stylematch/stylematch-api/internal/httperr"
	"github.com/stylematch/stylematch-api/internal/httpresp"
	"github.com/stylematch/stylematch-api/internal/models"
	ucAccount "github.com/stylematch/stylematch-api/internal/usecase/account"
	"github.com/stylematch/stylematch-api/internal/validators"
)

type AdminHandler struct {
	repo domain.Repository

	updateClientUC  *ucAccount.UpdateClientAccount
	deleteClientUC  *ucAccount.DeleteClientAccount
	updateStylistUC *ucAccount.UpdateStylistAccount
	deleteStylistUC *ucAccount.DeleteStylistAccount
}

func NewAdminHandler(
	repo domain.Repository,
	updateClientUC *ucAccount.UpdateClientAccount,
	deleteClientUC *ucAccount.DeleteClientAccount,
	updateStylistUC *ucAccount.UpdateStylistAccount,
	deleteStylistUC *ucAccount.DeleteStylistAccount,
) *AdminHandler {
	return &AdminHandler{
		repo:            repo,
		updateClientUC:  updateClientUC,
		deleteClientUC:  deleteClientUC,
		updateStylistUC: updateStylistUC,
		deleteStylistUC: deleteStylistUC,
	}
}

// --------- Requests ---------

type AdminUpdateClientRequest struct {
	Name                 *string `json:"name" binding:"omitempty,max=255"`
	Email                *string `json:"email" binding:"omitempty,email,max=255"`
	Password             *string `json:"password"`
	PasswordConfirmation *string `json:"password_confirmation"`

	Country          *string           `json:"country" binding:"omitempty,max=100"`
	City             *string           `json:"city" binding:"omitempty,max=100"`
	BodyType         *string           `json:"body_type" binding:"omitempty,max=100"`
	Colors           *models.ColorList `json:"colors"`
	MessageToStylist *string           `json:"message_to_stylist" binding:"omitempty,max=1000"`
}

type AdminUpdateStylistRequest struct {
	Name                 *string `json:"name" binding:"omitempty,max=255"`
	Email                *string `json:"email" binding:"omitempty,email,max=255"`
	Password             *string `json:"password"`
	PasswordConfirmation *string `json:"password_confirmation"`
}

// checkOptionalPassword validates the password pair when a non-empty
// password was sent. Writes the 422 itself.
func checkOptionalPassword(c *gin.Context, password, confirmation *string) bool {
	if password == nil || *password == "" {
		return true
	}

	conf := ""
	if confirmation != nil {
		conf = *confirmation
	}
	if fields := validators.CheckPassword(*password, conf); fields != nil {
		httperr.Validation(c, fields)
		return false
	}
	return true
}

// ======================================================
// CLIENTS
// ======================================================

func (h *AdminHandler) ListClients(c *gin.Context) {
	clients, err := h.repo.ListClientsWithUsers(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Failed to list clients.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "All clients fetched successfully.",
		"clients": clients,
	})
}

func (h *AdminHandler) GetClient(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	client, err := h.repo.FindClientWithUser(c.Request.Context(), id)
	if err != nil {
		httperr.NotFound(c, "client_not_found", "Client not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Client details fetched successfully.",
		"client":  client,
	})
}

func (h *AdminHandler) UpdateClient(c *gin.Context) {
	adminID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req AdminUpdateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	if !checkOptionalPassword(c, req.Password, req.PasswordConfirmation) {
		return
	}

	err := h.updateClientUC.Execute(c.Request.Context(), ucAccount.UpdateClientAccountInput{
		ClientID:         id,
		AdminID:          adminID,
		Name:             req.Name,
		Email:            req.Email,
		Password:         req.Password,
		Country:          req.Country,
		City:             req.City,
		BodyType:         req.BodyType,
		Colors:           req.Colors,
		MessageToStylist: req.MessageToStylist,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "client_not_found"):
			httperr.NotFound(c, "client_not_found", "Client not found.")
		case httperr.IsBusiness(err, "user_not_found"):
			httperr.NotFound(c, "user_not_found", "Associated user not found for client.")
		case httperr.IsBusiness(err, "email_taken"):
			httperr.ValidationField(c, "email", "The email has already been taken.")
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to update client account.",
				"error":   err.Error(),
			})
		}
		return
	}

	httpresp.Message(c, "Client account updated successfully!")
}

func (h *AdminHandler) DeleteClient(c *gin.Context) {
	adminID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleteClientUC.Execute(c.Request.Context(), adminID, id); err != nil {
		if httperr.IsBusiness(err, "client_not_found") {
			httperr.NotFound(c, "client_not_found", "Client not found.")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to delete client account.",
			"error":   err.Error(),
		})
		return
	}

	httpresp.Message(c, "Client account deleted successfully!")
}

// ======================================================
// STYLISTS
// ======================================================

func (h *AdminHandler) ListStylists(c *gin.Context) {
	stylists, err := h.repo.ListStylistsWithUsers(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_stylists", "Failed to list stylists.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "All stylists fetched successfully.",
		"stylists": stylists,
	})
}

func (h *AdminHandler) GetStylist(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	stylist, err := h.repo.FindStylistWithUser(c.Request.Context(), id)
	if err != nil {
		httperr.NotFound(c, "stylist_not_found", "Stylist not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Stylist details fetched successfully.",
		"stylist": stylist,
	})
}

func (h *AdminHandler) UpdateStylist(c *gin.Context) {
	adminID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req AdminUpdateStylistRequest
	if !bindJSON(c, &req) {
		return
	}

	if !checkOptionalPassword(c, req.Password, req.PasswordConfirmation) {
		return
	}

	err := h.updateStylistUC.Execute(c.Request.Context(), ucAccount.UpdateStylistAccountInput{
		StylistID: id,
		AdminID:   adminID,
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "stylist_not_found"):
			httperr.NotFound(c, "stylist_not_found", "Stylist not found.")
		case httperr.IsBusiness(err, "user_not_found"):
			httperr.NotFound(c, "user_not_found", "Associated user not found for stylist.")
		case httperr.IsBusiness(err, "email_taken"):
			httperr.ValidationField(c, "email", "The email has already been taken.")
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to update stylist account.",
				"error":   err.Error(),
			})
		}
		return
	}

	httpresp.Message(c, "Stylist account updated successfully!")
}

func (h *AdminHandler) DeleteStylist(c *gin.Context) {
	adminID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleteStylistUC.Execute(c.Request.Context(), adminID, id); err != nil {
		if httperr.IsBusiness(err, "stylist_not_found") {
			httperr.NotFound(c, "stylist_not_found", "Stylist not found.")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to delete stylist account.",
			"error":   err.Error(),
		})
		return
	}

	httpresp.Message(c, "Stylist account deleted successfully!")
}
