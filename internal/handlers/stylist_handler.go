package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/stylematch/stylematch-api/internal/domain/account"
	"github.com/stylematch/stylematch-api/internal/httperr"
	"github.com/stylematch/stylematch-api/internal/models"
)

type StylistHandler struct {
	repo domain.Repository
}

func NewStylistHandler(repo domain.Repository) *StylistHandler {
	return &StylistHandler{repo: repo}
}

// ======================================================
// PUBLIC DIRECTORY
// ======================================================
func (h *StylistHandler) Index(c *gin.Context) {
	stylists, err := h.repo.ListStylistsWithUsers(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_stylists", "Failed to list stylists.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"stylists": stylists})
}

// ======================================================
// UPDATE PROFILE (STYLIST)
// ======================================================

// UpdateProfile has nothing to write yet, stylists carry no mutable fields.
// The role check and the current profile in the response still matter to the
// frontend.
func (h *StylistHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stylist, err := h.repo.FindStylistByUserID(c.Request.Context(), userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "stylist_profile_not_found", "Stylist profile not found.")
			return
		}
		httperr.Internal(c, "failed_to_load_stylist", "Failed to load stylist profile.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Stylist profile updated successfully!",
		"stylist": stylist,
	})
}

// ======================================================
// MY CLIENTS (STYLIST)
// ======================================================
func (h *StylistHandler) MyClients(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stylist, err := h.repo.FindStylistByUserID(c.Request.Context(), userID)
	if err != nil {
		// A stylist without its profile row gets an empty list, not an
		// error.
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, gin.H{"clients": []models.Client{}})
			return
		}
		httperr.Internal(c, "failed_to_load_stylist", "Failed to load stylist profile.")
		return
	}

	clients, err := h.repo.ListClientsForStylist(c.Request.Context(), stylist.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_clients", "Failed to list clients.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"clients": clients})
}
