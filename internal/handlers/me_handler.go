package handlers

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/stylematch/stylematch-api/internal/audit"
	domain "github.com/stylematch/stylematch-api/internal/domain/account"
	"github.com/stylematch/stylematch-api/internal/httperr"
	"github.com/stylematch/stylematch-api/internal/httpresp"
	"github.com/stylematch/stylematch-api/internal/models"
	ucAccount "github.com/stylematch/stylematch-api/internal/usecase/account"
	"github.com/stylematch/stylematch-api/internal/validators"
)

type MeHandler struct {
	repo     domain.Repository
	deleteUC *ucAccount.DeleteOwnAccount
	audit    audit.Recorder
}

func NewMeHandler(
	repo domain.Repository,
	deleteUC *ucAccount.DeleteOwnAccount,
	auditRec audit.Recorder,
) *MeHandler {
	return &MeHandler{
		repo:     repo,
		deleteUC: deleteUC,
		audit:    auditRec,
	}
}

type UpdateProfileRequest struct {
	Name                 *string `json:"name" binding:"omitempty,max=255"`
	Email                *string `json:"email" binding:"omitempty,email,max=255"`
	Password             *string `json:"password"`
	PasswordConfirmation *string `json:"password_confirmation"`

	// Applied only when the caller's role is client.
	Country  *string           `json:"country" binding:"omitempty,max=100"`
	City     *string           `json:"city" binding:"omitempty,max=100"`
	BodyType *string           `json:"body_type" binding:"omitempty,max=100"`
	Colors   *models.ColorList `json:"colors"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.repo.FindUserWithProfile(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "user_not_found", "Failed to load user.")
		return
	}

	httpresp.OK(c, user)
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.repo.FindUserWithProfile(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "user_not_found", "Failed to load user.")
		return
	}

	// Only fields present in the request are touched.
	if req.Name != nil {
		user.Name = *req.Name
	}

	if req.Email != nil {
		email := validators.NormalizeEmail(*req.Email)
		taken, err := h.repo.EmailTaken(c.Request.Context(), email, user.ID)
		if err != nil {
			httperr.Internal(c, "failed_to_check_email", "Failed to check email uniqueness.")
			return
		}
		if taken {
			httperr.ValidationField(c, "email", "The email has already been taken.")
			return
		}
		user.Email = email
	}

	if req.Password != nil && *req.Password != "" {
		confirmation := ""
		if req.PasswordConfirmation != nil {
			confirmation = *req.PasswordConfirmation
		}
		if fields := validators.CheckPassword(*req.Password, confirmation); fields != nil {
			httperr.Validation(c, fields)
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Failed to hash password.")
			return
		}
		user.PasswordHash = string(hashed)
	}

	if err := h.repo.SaveUser(c.Request.Context(), user); err != nil {
		httperr.Internal(c, "failed_to_update_user", "Failed to update profile.")
		return
	}

	// Preference fields only apply to the caller's own client row.
	if user.Role == models.RoleClient && user.Client != nil {
		client := user.Client
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

		if err := h.repo.SaveClient(c.Request.Context(), client); err != nil {
			httperr.Internal(c, "failed_to_update_client", "Failed to update profile.")
			return
		}
	}

	loaded, err := h.repo.FindUserWithProfile(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_user", "Failed to load user.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "profile_updated",
		Entity:   "user",
		EntityID: &userID,
	})

	httpresp.OK(c, gin.H{
		"message": "Profile updated successfully",
		"user":    loaded,
	})
}

func (h *MeHandler) DeleteMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.repo.FindUserWithProfile(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "user_not_found", "Failed to load user.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), user); err != nil {
		httperr.Internal(c, "failed_to_delete_account", "Failed to delete account.")
		return
	}

	httpresp.Message(c, "Account deleted successfully")
}
