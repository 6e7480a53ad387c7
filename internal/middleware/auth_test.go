package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/stylematch/stylematch-api/internal/config"
	"github.com/stylematch/stylematch-api/internal/middleware"
	"github.com/stylematch/stylematch-api/internal/models"
)

type fakeSessions struct {
	live map[string]uint
}

func (f *fakeSessions) Create(_ context.Context, userID uint) (string, error) {
	return "", nil
}

func (f *fakeSessions) Exists(_ context.Context, userID uint, sessionID string) (bool, error) {
	uid, ok := f.live[sessionID]
	return ok && uid == userID, nil
}

func (f *fakeSessions) Revoke(_ context.Context, _ uint, sessionID string) error {
	delete(f.live, sessionID)
	return nil
}

func (f *fakeSessions) RevokeAll(_ context.Context, _ uint) error {
	f.live = map[string]uint{}
	return nil
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func authRouter(cfg *config.Config, sessions *fakeSessions) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.AuthMiddleware(cfg, sessions))
	r.GET("/probe", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.MustGet(middleware.ContextUserID),
			"role":    c.MustGet(middleware.ContextUserRole),
			"sid":     c.MustGet(middleware.ContextSessionID),
		})
	})
	return r
}

func TestAuthMiddlewareAcceptsLiveSession(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	sessions := &fakeSessions{live: map[string]uint{"sid-1": 7}}
	r := authRouter(cfg, sessions)

	token := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub":  7,
		"role": "client",
		"sid":  "sid-1",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"role":"client"`)
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	r := authRouter(cfg, &fakeSessions{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsBadScheme(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	r := authRouter(cfg, &fakeSessions{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Basic abc123")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	sessions := &fakeSessions{live: map[string]uint{"sid-1": 7}}
	r := authRouter(cfg, sessions)

	token := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub":  7,
		"role": "client",
		"sid":  "sid-1",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsRevokedSession(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	sessions := &fakeSessions{live: map[string]uint{}}
	r := authRouter(cfg, sessions)

	// Signature is valid but the session id is no longer in the store.
	token := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub":  7,
		"role": "client",
		"sid":  "sid-gone",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "session_revoked")
}

func TestAuthMiddlewareRejectsUnknownRole(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	sessions := &fakeSessions{live: map[string]uint{"sid-1": 7}}
	r := authRouter(cfg, sessions)

	token := signToken(t, cfg.JWTSecret, jwt.MapClaims{
		"sub":  7,
		"role": "owner",
		"sid":  "sid-1",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsWrongSecret(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	sessions := &fakeSessions{live: map[string]uint{"sid-1": 7}}
	r := authRouter(cfg, sessions)

	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub":  7,
		"role": "client",
		"sid":  "sid-1",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleRejectsWrongRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uint(7))
		c.Set(middleware.ContextUserRole, models.RoleClient)
	})
	r.GET("/clients", middleware.RequireRole(
		models.RoleStylist,
		"Only stylists can access this resource.",
	), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/clients", nil))

	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, w.Body.String(), "Only stylists")
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserRole, models.RoleAdmin)
	})
	r.GET("/admin", middleware.RequireAdminDashboard(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleWithoutAuthContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", middleware.RequireAdminDashboard(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
