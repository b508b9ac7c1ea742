package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	advisorysvc "github.com/akilima/akilima/internal/service/advisory"
)

// AdvisoryHandler serves crop guidance lookups.
type AdvisoryHandler struct {
	svc    *advisorysvc.Service
	logger *zap.Logger
}

// NewAdvisoryHandler constructs the HTTP handler adapter.
func NewAdvisoryHandler(svc *advisorysvc.Service, logger *zap.Logger) *AdvisoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdvisoryHandler{svc: svc, logger: logger}
}

// List returns every advisory in the catalog.
func (h *AdvisoryHandler) List(c *gin.Context) {
	entries := h.svc.ListAll()
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(entries), "data": entries})
}

// Get returns a single crop's advisory, matching the id case-insensitively.
// The router cannot register the static my-crops sibling next to the :crop
// wildcard, so that route is dispatched here.
func (h *AdvisoryHandler) Get(c *gin.Context) {
	if c.Param("crop") == "my-crops" {
		h.MyCrops(c)
		return
	}

	entry, err := h.svc.Get(c.Param("crop"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": entry})
}

// MyCrops returns the advisories for the caller's selected crops. Unknown
// selections are dropped silently.
func (h *AdvisoryHandler) MyCrops(c *gin.Context) {
	user := currentUser(c)

	entries, message := h.svc.ForCrops(user.Crops)
	resp := gin.H{"success": true, "count": len(entries), "data": entries}
	if message != "" {
		resp["message"] = message
	}
	c.JSON(http.StatusOK, resp)
}
