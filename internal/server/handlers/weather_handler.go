package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	weathersvc "github.com/akilima/akilima/internal/service/weather"
)

// WeatherHandler serves weather snapshots and rule-derived advisories.
type WeatherHandler struct {
	svc    *weathersvc.Service
	logger *zap.Logger
}

// NewWeatherHandler constructs the HTTP handler adapter.
func NewWeatherHandler(svc *weathersvc.Service, logger *zap.Logger) *WeatherHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WeatherHandler{svc: svc, logger: logger}
}

// Get returns current conditions and the distilled daily forecast.
func (h *WeatherHandler) Get(c *gin.Context) {
	report, err := h.svc.Report(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": report})
}

// Advisory returns the farming advisories derived from the current
// observation.
func (h *WeatherHandler) Advisory(c *gin.Context) {
	report, err := h.svc.Advisory(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": report})
}
