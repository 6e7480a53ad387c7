package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/stylematch/stylematch-api/internal/httperr"
	"github.com/stylematch/stylematch-api/internal/models"
)

// RequireRole rejects any caller whose authenticated role differs from the
// expected one. Must run after AuthMiddleware.
func RequireRole(role models.Role, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, ok := c.Get(ContextUserRole)
		if !ok {
			httperr.Unauthorized(c, "user_not_in_context", "Unauthenticated.")
			c.Abort()
			return
		}

		if got.(models.Role) != role {
			httperr.Forbidden(c, "wrong_role", message)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdminDashboard is the admin-dashboard capability gate. Today only
// the admin role carries it.
func RequireAdminDashboard() gin.HandlerFunc {
	return RequireRole(models.RoleAdmin, "This action requires admin dashboard access.")
}
