package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/stylematch/stylematch-api/internal/audit"
	"github.com/stylematch/stylematch-api/internal/config"
	domain "github.com/stylematch/stylematch-api/internal/domain/account"
	"github.com/stylematch/stylematch-api/internal/httperr"
	"github.com/stylematch/stylematch-api/internal/httpresp"
	"github.com/stylematch/stylematch-api/internal/models"
	"github.com/stylematch/stylematch-api/internal/session"
	"github.com/stylematch/stylematch-api/internal/validators"
)

type AuthHandler struct {
	repo     domain.Repository
	sessions session.Store
	audit    audit.Recorder
	config   *config.Config
}

func NewAuthHandler(
	repo domain.Repository,
	sessions session.Store,
	auditRec audit.Recorder,
	cfg *config.Config,
) *AuthHandler {
	return &AuthHandler{
		repo:     repo,
		sessions: sessions,
		audit:    auditRec,
		config:   cfg,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name                 string `json:"name" binding:"required,max=255"`
	Email                string `json:"email" binding:"required,email,max=255"`
	Password             string `json:"password" binding:"required"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required"`
	Role                 string `json:"role" binding:"required"`

	// Client preference fields, ignored for other roles.
	Country  string           `json:"country"`
	City     string           `json:"city"`
	BodyType string           `json:"body_type"`
	Colors   models.ColorList `json:"colors"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	if fields := validators.CheckPassword(req.Password, req.PasswordConfirmation); fields != nil {
		httperr.Validation(c, fields)
		return
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		httperr.ValidationField(c, "role", "The selected role is invalid.")
		return
	}

	email := validators.NormalizeEmail(req.Email)

	if h.config.CheckEmailDomain && !validators.IsEmailDomainValid(email) {
		httperr.ValidationField(c, "email", "The email domain does not appear to be valid.")
		return
	}

	taken, err := h.repo.EmailTaken(c.Request.Context(), email, 0)
	if err != nil {
		httperr.Internal(c, "failed_to_check_email", "Failed to check email uniqueness.")
		return
	}
	if taken {
		httperr.ValidationField(c, "email", "The email has already been taken.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Failed to hash password.")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
	}

	// The role decides which profile row is created alongside the user.
	switch role {
	case models.RoleClient:
		user.Client = &models.Client{
			Country:  req.Country,
			City:     req.City,
			BodyType: req.BodyType,
			Colors:   req.Colors,
		}
	case models.RoleStylist:
		user.Stylist = &models.Stylist{}
	case models.RoleAdmin:
		// no profile row
	}

	if err := h.repo.CreateUserWithProfile(c.Request.Context(), &user); err != nil {
		httperr.Internal(c, "failed_to_create_user", "Failed to create user.")
		return
	}

	sid, err := h.sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_create_session", "Failed to create session.")
		return
	}

	token, err := h.generateToken(&user, sid)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Failed to generate token.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: gin.H{"role": user.Role},
	})

	httpresp.Created(c, gin.H{
		"message": "Registration successful",
		"user":    user,
		"token":   token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	email := validators.NormalizeEmail(req.Email)

	// Unknown email and wrong password answer identically.
	user, err := h.repo.FindUserByEmail(c.Request.Context(), email)
	if err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Invalid credentials")
		return
	}

	// A fresh session id per login is the fixation rotation: old tokens stay
	// valid only for their own sessions, this one is brand new.
	sid, err := h.sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_create_session", "Failed to create session.")
		return
	}

	token, err := h.generateToken(user, sid)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Failed to generate token.")
		return
	}

	loaded, err := h.repo.FindUserWithProfile(c.Request.Context(), user.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_user", "Failed to load user.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_login",
		Entity:   "user",
		EntityID: &user.ID,
	})

	httpresp.OK(c, gin.H{
		"message": "Logged in",
		"user":    loaded,
		"token":   token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	sid := currentSessionID(c)

	if err := h.sessions.Revoke(c.Request.Context(), userID, sid); err != nil {
		httperr.Internal(c, "failed_to_logout", "Failed to log out.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "user_logout",
		Entity:   "user",
		EntityID: &userID,
	})

	httpresp.Message(c, "Logged out")
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User, sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role.String(),
		"sid":  sessionID,
		"exp":  time.Now().Add(session.TTL).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
