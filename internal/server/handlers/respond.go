// Package handlers adapts the services to the HTTP transport. Response bodies
// follow the {success, count, data, message} envelope of the public API.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akilima/akilima/internal/domain/apperr"
)

// respondError maps a service error onto the transport contract. Unexpected
// failures become an opaque 500 with the cause logged, never suppressed.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, apperr.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, apperr.ErrUpstreamUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": err.Error()})
	default:
		logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal server error"})
	}
}
