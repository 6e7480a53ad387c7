package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/stylematch/stylematch-api/internal/audit"
	"github.com/stylematch/stylematch-api/internal/avatar"
	domain "github.com/stylematch/stylematch-api/internal/domain/account"
	"github.com/stylematch/stylematch-api/internal/httperr"
)

const maxAvatarBytes = 5 << 20

type AvatarHandler struct {
	repo     domain.Repository
	uploader avatar.Uploader
	audit    audit.Recorder
}

func NewAvatarHandler(
	repo domain.Repository,
	uploader avatar.Uploader,
	auditRec audit.Recorder,
) *AvatarHandler {
	return &AvatarHandler{
		repo:     repo,
		uploader: uploader,
		audit:    auditRec,
	}
}

// Upload accepts a multipart "avatar" file, converts it to a bounded webp and
// stores it, replacing the user's previous avatar URL.
func (h *AvatarHandler) Upload(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		httperr.ValidationField(c, "avatar", "The avatar field is required.")
		return
	}

	if file.Size > maxAvatarBytes {
		httperr.ValidationField(c, "avatar", "The avatar may not be larger than 5 MB.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_avatar", "Failed to read uploaded file.")
		return
	}
	defer src.Close()

	processed, err := avatar.Process(src)
	if err != nil {
		httperr.ValidationField(c, "avatar", "The avatar must be a valid JPEG or PNG image.")
		return
	}

	// Unique key per upload so stale CDN copies never mask the new image.
	key := fmt.Sprintf("avatars/%d-%s.webp", userID, uuid.NewString()[:8])

	url, err := h.uploader.Upload(c.Request.Context(), key, processed)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_avatar", "Failed to store avatar.")
		return
	}

	user, err := h.repo.FindUserWithProfile(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "user_not_found", "Failed to load user.")
		return
	}

	user.AvatarURL = url
	if err := h.repo.SaveUser(c.Request.Context(), user); err != nil {
		httperr.Internal(c, "failed_to_update_user", "Failed to save avatar.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "avatar_updated",
		Entity:   "user",
		EntityID: &userID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message":    "Avatar updated successfully",
		"avatar_url": url,
	})
}
