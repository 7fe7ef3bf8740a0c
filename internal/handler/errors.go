package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/david-morgenstern/thundervarg/internal/service"
)

// writeServiceError maps service sentinels onto HTTP statuses. Store
// connectivity failures land in the default branch as a 500, never a
// crash.
func writeServiceError(c *gin.Context, err error) {
	switch err {
	case service.ErrInvalidInput:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
	case service.ErrUnauthorized:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case service.ErrForbidden:
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case service.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case service.ErrConflict:
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
