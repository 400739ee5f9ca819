package handler

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"focus-writer/internal/flow"
	"focus-writer/internal/logger"
	"focus-writer/internal/model"
	"focus-writer/internal/momentum"
	"focus-writer/internal/plan"
	"focus-writer/internal/store"
)

// TodayHandler exposes the daily session flow. One flow controller per
// member per day, held in memory; a new day (or a fresh process) simply
// starts the flow over from the persisted record.
type TodayHandler struct {
	store store.Store
	flows sync.Map // member id -> *flowEntry
}

type flowEntry struct {
	mu   sync.Mutex
	day  string
	ctrl *flow.Controller
}

func NewTodayHandler(st store.Store) *TodayHandler {
	return &TodayHandler{store: st}
}

func (h *TodayHandler) entry(c *gin.Context) (*flowEntry, *flow.Controller, error) {
	uid := c.GetInt("user_id")
	today := time.Now().Format(model.DateLayout)

	val, _ := h.flows.LoadOrStore(uid, &flowEntry{})
	e := val.(*flowEntry)
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ctrl == nil || e.day != today {
		ctrl := flow.NewController(h.store, uid, true, time.Now)
		if err := ctrl.Load(c.Request.Context()); err != nil {
			return nil, nil, err
		}
		e.ctrl = ctrl
		e.day = today
	}
	return e, e.ctrl, nil
}

func (h *TodayHandler) respond(c *gin.Context, ctrl *flow.Controller) {
	m := ctrl.Momentum()
	c.JSON(http.StatusOK, gin.H{
		"step":             ctrl.Step(),
		"todayTask":        ctrl.TodayTask(),
		"nextTask":         ctrl.NextTask(),
		"momentum":         m,
		"momentumText":     momentum.StatusText(m),
		"clarityQuestions": plan.ClarityQuestions,
	})
}

// GET /api/today
func (h *TodayHandler) Today(c *gin.Context) {
	_, ctrl, err := h.entry(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.respond(c, ctrl)
}

// POST /api/today/clarity  body: clarity answers, or {"skip":true}
func (h *TodayHandler) Clarity(c *gin.Context) {
	var req struct {
		Skip    bool                   `json:"skip"`
		Clarity *model.ClarityResponse `json:"clarity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	e, ctrl, err := h.entry(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	resp := req.Clarity
	if req.Skip {
		resp = nil
	}
	if err := ctrl.SubmitClarity(resp); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	h.respond(c, ctrl)
}

// POST /api/today/checkin
func (h *TodayHandler) CheckIn(c *gin.Context) {
	var req model.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	e, ctrl, err := h.entry(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := ctrl.SubmitCheckIn(c.Request.Context(), req); err != nil {
		if err == flow.ErrWrongStep {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		// Step did not advance; the writer may retry.
		logger.Error("checkin.save failed", "uid", c.GetInt("user_id"), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Info("checkin.ok", "uid", c.GetInt("user_id"), "completed", req.Completed, "minutes", req.Minutes)
	h.respond(c, ctrl)
}

// POST /api/today/signup-seen
func (h *TodayHandler) SignupSeen(c *gin.Context) {
	e, ctrl, err := h.entry(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := ctrl.DismissSignupPrompt(c.Request.Context()); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	h.respond(c, ctrl)
}

// POST /api/today/next-step
func (h *TodayHandler) NextStep(c *gin.Context) {
	var req model.NextStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	e, ctrl, err := h.entry(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := ctrl.CommitNextStep(c.Request.Context(), req.PlannedTime); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	h.respond(c, ctrl)
}

// POST /api/today/intervention  body: {"type":"rescue-sprint"}
func (h *TodayHandler) Intervention(c *gin.Context) {
	var req struct {
		Type string `json:"type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	e, ctrl, err := h.entry(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	exitToPlan := ctrl.ChooseIntervention(req.Type)
	m := ctrl.Momentum()
	c.JSON(http.StatusOK, gin.H{
		"step":       ctrl.Step(),
		"exitToPlan": exitToPlan,
		"momentum":   m,
	})
}
