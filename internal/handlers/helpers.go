package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stylematch/stylematch-api/internal/httperr"
	"github.com/stylematch/stylematch-api/internal/middleware"
	"github.com/stylematch/stylematch-api/internal/validators"
)

// bindJSON binds the body and writes the error response itself: 422 with a
// field map for validation failures, 400 for unparseable bodies.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if fields, ok := validators.FieldErrors(err); ok {
			httperr.Validation(c, fields)
		} else {
			httperr.BadRequest(c, "invalid_request", "Malformed request body.")
		}
		return false
	}
	return true
}

func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(middleware.ContextUserID)
	if !exists {
		httperr.Unauthorized(c, "user_not_in_context", "Unauthenticated.")
		return 0, false
	}

	id, ok := v.(uint)
	if !ok {
		httperr.Unauthorized(c, "invalid_user_id_type", "Unauthenticated.")
		return 0, false
	}
	return id, true
}

func currentSessionID(c *gin.Context) string {
	v, _ := c.Get(middleware.ContextSessionID)
	sid, _ := v.(string)
	return sid
}

func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.NotFound(c, "not_found", "Resource not found.")
		return 0, false
	}
	return uint(id), true
}
