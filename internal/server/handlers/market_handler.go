package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/akilima/akilima/internal/domain/models"
	marketsvc "github.com/akilima/akilima/internal/service/market"
)

// MarketHandler serves market price views and submissions.
type MarketHandler struct {
	svc    *marketsvc.Service
	logger *zap.Logger
}

// NewMarketHandler constructs the HTTP handler adapter.
func NewMarketHandler(svc *marketsvc.Service, logger *zap.Logger) *MarketHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MarketHandler{svc: svc, logger: logger}
}

// List returns the latest price per quality tier for every crop.
func (h *MarketHandler) List(c *gin.Context) {
	grouped, err := h.svc.Grouped(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": grouped})
}

// GetCrop returns the most recent records for one crop.
func (h *MarketHandler) GetCrop(c *gin.Context) {
	prices, err := h.svc.Latest(c.Request.Context(), c.Param("crop"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(prices), "data": prices})
}

// History returns up to limit records for one crop. An empty list is a valid
// answer here.
func (h *MarketHandler) History(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 64)

	prices, err := h.svc.History(c.Request.Context(), c.Param("crop"), limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(prices), "data": prices})
}

// Create appends a new price record attributed to the caller.
func (h *MarketHandler) Create(c *gin.Context) {
	var req models.SubmitPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid price payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request body"})
		return
	}

	created, err := h.svc.Submit(c.Request.Context(), req, currentUser(c).ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": created})
}

// Delete removes one price record by identity.
func (h *MarketHandler) Delete(c *gin.Context) {
	if err := h.svc.Remove(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Price deleted successfully"})
}
