package flow

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"focus-writer/internal/model"
	"focus-writer/internal/momentum"
	"focus-writer/internal/store"
)

// Step is a state of the daily session flow.
type Step string

const (
	StepLoading      Step = "loading"
	StepNoProject    Step = "no-project"
	StepClarity      Step = "clarity"
	StepCheckIn      Step = "checkin"
	StepSignupPrompt Step = "signup-prompt"
	StepNextStep     Step = "next-step"
	StepDone         Step = "done"
)

// ErrWrongStep is returned when a transition is requested from a state
// that does not allow it.
var ErrWrongStep = fmt.Errorf("not allowed in current step")

// Controller walks one writer through the daily sequence:
// clarity -> checkin -> (signup-prompt |) next-step -> done.
// One instance per member per day; not safe for concurrent use.
type Controller struct {
	store             store.Store
	memberID          int
	identityAvailable bool
	now               func() time.Time

	step      Step
	project   *model.Project
	todayTask *model.Task
	nextTask  *model.Task
	clarity   *model.ClarityResponse
	sessionID string
	momentum  model.MomentumData
}

func NewController(st store.Store, memberID int, identityAvailable bool, now func() time.Time) *Controller {
	if now == nil {
		now = time.Now
	}
	return &Controller{
		store:             st,
		memberID:          memberID,
		identityAvailable: identityAvailable,
		now:               now,
		step:              StepLoading,
	}
}

func (c *Controller) Step() Step                   { return c.step }
func (c *Controller) Project() *model.Project      { return c.project }
func (c *Controller) TodayTask() *model.Task       { return c.todayTask }
func (c *Controller) NextTask() *model.Task        { return c.nextTask }
func (c *Controller) Momentum() model.MomentumData { return c.momentum }

// Load determines the starting step: no-project when no active project
// exists, done when nothing is pending today, clarity otherwise.
func (c *Controller) Load(ctx context.Context) error {
	project, err := c.store.ActiveProject(ctx, c.memberID)
	if err == store.ErrNotFound {
		c.step = StepNoProject
		return nil
	}
	if err != nil {
		return fmt.Errorf("load active project: %w", err)
	}
	c.project = project

	tasks, err := c.store.TasksByProject(ctx, project.ID)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	sessions, err := c.store.SessionsByProject(ctx, project.ID, nil)
	if err != nil {
		return fmt.Errorf("load sessions: %w", err)
	}

	now := c.now()
	c.momentum = momentum.Calculate(tasks, sessions, now)
	today := now.Format(model.DateLayout)

	c.todayTask = pickTodayTask(tasks, today)
	c.nextTask = pickNextTask(tasks, today)

	if c.todayTask == nil {
		c.step = StepDone
	} else {
		c.step = StepClarity
	}
	return nil
}

// pickTodayTask returns the pending task due today, falling back to the
// first pending task in plan order.
func pickTodayTask(tasks []model.Task, today string) *model.Task {
	for i := range tasks {
		if tasks[i].DueDate == today && tasks[i].Status == model.TaskPending {
			return &tasks[i]
		}
	}
	for i := range tasks {
		if tasks[i].Status == model.TaskPending {
			return &tasks[i]
		}
	}
	return nil
}

func pickNextTask(tasks []model.Task, today string) *model.Task {
	for i := range tasks {
		if tasks[i].DueDate > today && tasks[i].Status == model.TaskPending {
			return &tasks[i]
		}
	}
	return nil
}

// SubmitClarity records the clarity answers and moves to check-in.
// A nil response means the writer skipped the step.
func (c *Controller) SubmitClarity(resp *model.ClarityResponse) error {
	if c.step != StepClarity {
		return ErrWrongStep
	}
	c.clarity = resp
	c.step = StepCheckIn
	return nil
}

// SubmitCheckIn persists the session and, on a successful session, the
// task completion, as one unit. On persistence failure the step does not
// advance so the writer can retry.
func (c *Controller) SubmitCheckIn(ctx context.Context, req model.CheckInRequest) error {
	if c.step != StepCheckIn {
		return ErrWrongStep
	}

	sess := &model.Session{
		ID:        uuid.NewString(),
		ProjectID: c.project.ID,
		Clarity:   c.clarity,
		Completed: req.Completed,
		Minutes:   req.Minutes,
		Words:     req.Words,
		Mood:      req.Mood,
		CreatedAt: c.now(),
	}
	completedTaskID := ""
	if c.todayTask != nil {
		id := c.todayTask.ID
		sess.TaskID = &id
		if req.Completed {
			completedTaskID = id
		}
	}

	if err := c.store.CompleteCheckIn(ctx, sess, completedTaskID); err != nil {
		return fmt.Errorf("save check-in: %w", err)
	}
	c.sessionID = sess.ID
	if completedTaskID != "" && c.todayTask != nil {
		c.todayTask.Status = model.TaskCompleted
	}

	settings, err := c.store.Settings(ctx, c.memberID)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	completedBefore := settings.HasCompletedSession
	seenPrompt := settings.HasSeenSignupPrompt
	if req.Completed && !completedBefore {
		settings.HasCompletedSession = true
		if err := c.store.SaveSettings(ctx, settings); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
	}

	if req.Completed && !completedBefore && !seenPrompt && c.identityAvailable {
		c.step = StepSignupPrompt
	} else {
		c.step = StepNextStep
	}
	return nil
}

// DismissSignupPrompt marks the prompt seen (idempotent) and moves on.
func (c *Controller) DismissSignupPrompt(ctx context.Context) error {
	if c.step != StepSignupPrompt {
		return ErrWrongStep
	}
	settings, err := c.store.Settings(ctx, c.memberID)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if !settings.HasSeenSignupPrompt {
		settings.HasSeenSignupPrompt = true
		if err := c.store.SaveSettings(ctx, settings); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
	}
	c.step = StepNextStep
	return nil
}

// CommitNextStep records when the next session is intended to happen.
// An empty plannedTime counts as a skip; either way the day is done.
func (c *Controller) CommitNextStep(ctx context.Context, plannedTime string) error {
	if c.step != StepNextStep {
		return ErrWrongStep
	}
	if plannedTime != "" && c.sessionID != "" {
		sessions, err := c.store.SessionsByProject(ctx, c.project.ID, nil)
		if err != nil {
			return fmt.Errorf("load sessions: %w", err)
		}
		for i := range sessions {
			if sessions[i].ID == c.sessionID {
				sessions[i].PlannedTime = &plannedTime
				if err := c.store.SaveSession(ctx, &sessions[i]); err != nil {
					return fmt.Errorf("save planned time: %w", err)
				}
				break
			}
		}
	}
	c.step = StepDone
	return nil
}

// ChooseIntervention applies the surfaced intervention. Rescue sprints
// re-enter clarity for an ad hoc session; the other two exit this flow
// into the planning surface, signalled by exitToPlan.
func (c *Controller) ChooseIntervention(kind string) (exitToPlan bool) {
	switch kind {
	case model.InterventionRescueSprint:
		c.clarity = nil
		c.step = StepClarity
		return false
	case model.InterventionReduceTarget, model.InterventionReschedule:
		return true
	default:
		return false
	}
}
