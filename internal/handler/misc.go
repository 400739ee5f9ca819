package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"focus-writer/internal/service"
	"focus-writer/internal/store"
)

// MiscHandler covers health, settings, progress and billing reads.
type MiscHandler struct {
	store    store.Store
	billing  *service.BillingService
	progress *service.ProgressService
}

func NewMiscHandler(st store.Store, billing *service.BillingService, progress *service.ProgressService) *MiscHandler {
	return &MiscHandler{store: st, billing: billing, progress: progress}
}

// GET /api/health
func (h *MiscHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// GET /api/settings
func (h *MiscHandler) GetSettings(c *gin.Context) {
	settings, err := h.store.Settings(c.Request.Context(), c.GetInt("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// PUT /api/settings
func (h *MiscHandler) PutSettings(c *gin.Context) {
	var req struct {
		Timezone         *string `json:"timezone"`
		PreferredMinutes *int    `json:"preferredMinutes"`
		DaysPerWeek      *int    `json:"daysPerWeek"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.DaysPerWeek != nil && (*req.DaysPerWeek < 1 || *req.DaysPerWeek > 7) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "daysPerWeek must be between 1 and 7"})
		return
	}

	uid := c.GetInt("user_id")
	settings, err := h.store.Settings(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if req.Timezone != nil {
		settings.Timezone = *req.Timezone
	}
	if req.PreferredMinutes != nil {
		settings.PreferredMinutes = *req.PreferredMinutes
	}
	if req.DaysPerWeek != nil {
		settings.DaysPerWeek = *req.DaysPerWeek
	}
	if err := h.store.SaveSettings(c.Request.Context(), settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// GET /api/progress
func (h *MiscHandler) Progress(c *gin.Context) {
	p, err := h.progress.Progress(c.Request.Context(), c.GetInt("user_id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active project"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// GET /api/billing
func (h *MiscHandler) Billing(c *gin.Context) {
	tier, err := h.billing.Tier(c.Request.Context(), c.GetInt("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tier": tier})
}
