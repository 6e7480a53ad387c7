package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Message is the plain success envelope most write endpoints return.
func Message(c *gin.Context, message string) {
	OK(c, gin.H{"message": message})
}
