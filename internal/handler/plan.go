package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"focus-writer/internal/logger"
	"focus-writer/internal/model"
	"focus-writer/internal/service"
	"focus-writer/internal/store"
)

type PlanHandler struct {
	projects *service.ProjectService
	plans    *service.PlanService
}

func NewPlanHandler(projects *service.ProjectService, plans *service.PlanService) *PlanHandler {
	return &PlanHandler{projects: projects, plans: plans}
}

// POST /api/onboarding
func (h *PlanHandler) Onboard(c *gin.Context) {
	var req model.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	uid := c.GetInt("user_id")
	project, tasks, err := h.projects.Onboard(c.Request.Context(), uid, req)
	if err != nil {
		if errors.Is(err, service.ErrProjectLimit) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.Info("onboarding.ok", "uid", uid, "project_id", project.ID, "tasks", len(tasks))
	c.JSON(http.StatusOK, gin.H{"project": project, "tasks": tasks})
}

// GET /api/plan
func (h *PlanHandler) Plan(c *gin.Context) {
	uid := c.GetInt("user_id")
	project, tasks, err := h.plans.Plan(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active project"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project, "tasks": tasks})
}

// POST /api/plan/recalibrate
func (h *PlanHandler) Recalibrate(c *gin.Context) {
	var req model.RecalibrateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	uid := c.GetInt("user_id")
	tasks, err := h.plans.Recalibrate(c.Request.Context(), uid, req)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active project"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Info("plan.recalibrated", "uid", uid, "missed", len(req.MissedTaskIDs), "reduce", req.ReduceTargets)
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// POST /api/plan/catchup
func (h *PlanHandler) CatchUp(c *gin.Context) {
	var req model.CatchUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	uid := c.GetInt("user_id")
	tasks, err := h.plans.InsertCatchUp(c.Request.Context(), uid, req.AfterTaskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active project"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// SetActive handles POST /api/projects/:id/activate.
func (h *PlanHandler) SetActive(c *gin.Context) {
	uid := c.GetInt("user_id")
	if err := h.projects.SetActive(c.Request.Context(), uid, c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
