package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focus-writer/internal/model"
	"focus-writer/internal/plan"
	"focus-writer/internal/store"
)

func seedPlan(t *testing.T, st *store.MemoryStore) (*model.Project, []model.Task) {
	t.Helper()
	project, tasks, err := newProjectService(st).Onboard(context.Background(), 1, onboardingRequest())
	require.NoError(t, err)
	return project, tasks
}

func TestPlanService_Plan(t *testing.T) {
	st := store.NewMemoryStore()
	project, _ := seedPlan(t, st)

	got, tasks, err := NewPlanService(st).Plan(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, project.ID, got.ID)
	assert.Len(t, tasks, plan.TotalDays)
}

func TestPlanService_PlanWithoutProject(t *testing.T) {
	_, _, err := NewPlanService(store.NewMemoryStore()).Plan(context.Background(), 1)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPlanService_RecalibratePersists(t *testing.T) {
	st := store.NewMemoryStore()
	project, tasks := seedPlan(t, st)
	ctx := context.Background()

	updated, err := NewPlanService(st).Recalibrate(ctx, 1, model.RecalibrateRequest{
		MissedTaskIDs: []string{tasks[0].ID},
		ReduceTargets: true,
	})
	require.NoError(t, err)
	require.Len(t, updated, len(tasks))

	saved, err := st.TasksByProject(ctx, project.ID)
	require.NoError(t, err)

	today := time.Now().Format(model.DateLayout)
	byID := make(map[string]model.Task)
	for _, task := range saved {
		byID[task.ID] = task
	}
	assert.Equal(t, model.TaskSkipped, byID[tasks[0].ID].Status)

	// The pending run restarts today with no gaps.
	expected, _ := time.Parse(model.DateLayout, today)
	for _, task := range saved {
		if task.Status != model.TaskPending {
			continue
		}
		assert.Equal(t, expected.Format(model.DateLayout), task.DueDate)
		expected = expected.AddDate(0, 0, 1)
	}
}

func TestPlanService_InsertCatchUp(t *testing.T) {
	st := store.NewMemoryStore()
	project, tasks := seedPlan(t, st)
	ctx := context.Background()
	svc := NewPlanService(st)

	updated, err := svc.InsertCatchUp(ctx, 1, tasks[3].ID)
	require.NoError(t, err)
	assert.Len(t, updated, len(tasks)+1)

	saved, err := st.TasksByProject(ctx, project.ID)
	require.NoError(t, err)
	assert.Len(t, saved, len(tasks)+1)

	// Unknown anchor leaves the stored plan untouched.
	same, err := svc.InsertCatchUp(ctx, 1, "missing")
	require.NoError(t, err)
	assert.Len(t, same, len(tasks)+1)
}
