package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"focus-writer/internal/model"
	"focus-writer/internal/service"
)

type MigrateHandler struct{ svc *service.MigrateService }

func NewMigrateHandler(svc *service.MigrateService) *MigrateHandler {
	return &MigrateHandler{svc: svc}
}

// POST /api/migrate
func (h *MigrateHandler) Migrate(c *gin.Context) {
	var payload model.MigrationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid data format"})
		return
	}

	if len(payload.Projects) == 0 && len(payload.Tasks) == 0 && len(payload.Sessions) == 0 {
		c.JSON(http.StatusOK, model.MigrationResult{})
		return
	}

	result := h.svc.Migrate(c.Request.Context(), c.GetInt("user_id"), payload)
	if !result.OK() {
		// Partial failure: the caller decides which category to retry.
		c.JSON(http.StatusMultiStatus, result)
		return
	}
	c.JSON(http.StatusOK, result)
}
