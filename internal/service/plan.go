package service

import (
	"context"
	"fmt"
	"time"

	"focus-writer/internal/model"
	"focus-writer/internal/plan"
	"focus-writer/internal/store"
)

// PlanService runs the corrective planning operations against the
// member's active project.
type PlanService struct {
	store store.Store
}

func NewPlanService(st store.Store) *PlanService { return &PlanService{store: st} }

// Plan returns the active project's tasks in plan order.
func (s *PlanService) Plan(ctx context.Context, memberID int) (*model.Project, []model.Task, error) {
	project, err := s.store.ActiveProject(ctx, memberID)
	if err != nil {
		return nil, nil, err
	}
	tasks, err := s.store.TasksByProject(ctx, project.ID)
	if err != nil {
		return nil, nil, err
	}
	plan.SortPlan(tasks)
	return project, tasks, nil
}

// Recalibrate marks the missed tasks skipped and shifts everything still
// pending onto consecutive days from today, optionally shrinking word
// targets, then persists the new plan.
func (s *PlanService) Recalibrate(ctx context.Context, memberID int, req model.RecalibrateRequest) ([]model.Task, error) {
	_, tasks, err := s.Plan(ctx, memberID)
	if err != nil {
		return nil, err
	}
	updated := plan.RescheduleTasks(tasks, req.MissedTaskIDs, req.ReduceTargets, time.Now())
	if err := s.store.SaveTasks(ctx, updated); err != nil {
		return nil, fmt.Errorf("save rescheduled tasks: %w", err)
	}
	return updated, nil
}

// InsertCatchUp adds a catch-up sprint after the given task. An unknown
// anchor id leaves the plan unchanged.
func (s *PlanService) InsertCatchUp(ctx context.Context, memberID int, afterTaskID string) ([]model.Task, error) {
	project, tasks, err := s.Plan(ctx, memberID)
	if err != nil {
		return nil, err
	}
	updated := plan.InsertCatchUpSprint(tasks, project.ID, afterTaskID, time.Now())
	if len(updated) == len(tasks) {
		return tasks, nil
	}
	if err := s.store.SaveTasks(ctx, updated); err != nil {
		return nil, fmt.Errorf("save catch-up task: %w", err)
	}
	return updated, nil
}
