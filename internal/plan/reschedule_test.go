package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focus-writer/internal/model"
)

func samplePlan(t *testing.T) []model.Task {
	t.Helper()
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	return GenerateTasks("p1", Onboarding{
		TotalTargetWords: intp(50000),
		StartDate:        date("2026-08-01"),
		DaysPerWeek:      7,
	}, now)
}

func TestRescheduleTasks_MarksMissedSkipped(t *testing.T) {
	tasks := samplePlan(t)
	today := date("2026-08-10")
	missed := []string{tasks[2].ID, tasks[3].ID}

	out := RescheduleTasks(tasks, missed, false, today)

	byID := make(map[string]model.Task)
	for _, task := range out {
		byID[task.ID] = task
	}
	for _, id := range missed {
		assert.Equal(t, model.TaskSkipped, byID[id].Status)
	}
	// Skipped tasks keep their original due dates.
	assert.Equal(t, tasks[2].DueDate, byID[tasks[2].ID].DueDate)
	assert.Equal(t, tasks[3].DueDate, byID[tasks[3].ID].DueDate)
}

func TestRescheduleTasks_PendingRunIsGapFree(t *testing.T) {
	tasks := samplePlan(t)
	tasks[0].Status = model.TaskCompleted
	tasks[1].Status = model.TaskCompleted
	today := date("2026-08-10")

	out := RescheduleTasks(tasks, []string{tasks[2].ID}, false, today)

	expected := today
	for _, task := range out {
		if task.Status != model.TaskPending {
			continue
		}
		assert.Equal(t, expected.Format(model.DateLayout), task.DueDate)
		expected = expected.AddDate(0, 0, 1)
	}

	// Completed tasks are untouched.
	assert.Equal(t, tasks[0].DueDate, out[0].DueDate)
	assert.Equal(t, model.TaskCompleted, out[0].Status)
}

func TestRescheduleTasks_ReducesTargetsOnce(t *testing.T) {
	tasks := samplePlan(t)
	today := date("2026-08-10")

	out := RescheduleTasks(tasks, nil, true, today)

	var reduced *model.Task
	for i := range out {
		if out[i].Kind == model.KindWriting {
			reduced = &out[i]
			break
		}
	}
	require.NotNil(t, reduced)
	require.NotNil(t, reduced.TargetWords)
	assert.Equal(t, 1334, *reduced.TargetWords) // ceil(1667 * 0.8)

	// A second recalibration must not compound the reduction.
	again := RescheduleTasks(out, nil, true, today.AddDate(0, 0, 3))
	for _, task := range again {
		if task.ID == reduced.ID {
			assert.Equal(t, 1334, *task.TargetWords)
		}
	}
}

func TestRescheduleTasks_EmptyMissedShiftsEverything(t *testing.T) {
	tasks := samplePlan(t)
	today := date("2026-09-01")

	out := RescheduleTasks(tasks, nil, false, today)

	require.Equal(t, len(tasks), len(out))
	assert.Equal(t, "2026-09-01", out[0].DueDate)
	for _, task := range out {
		assert.Equal(t, model.TaskPending, task.Status)
	}
}

func TestInsertCatchUpSprint(t *testing.T) {
	tasks := samplePlan(t)
	anchor := tasks[4]

	out := InsertCatchUpSprint(tasks, "p1", anchor.ID, time.Now())

	require.Len(t, out, len(tasks)+1)
	sprint := out[5]
	assert.Equal(t, model.KindCatchUp, sprint.Kind)
	assert.Equal(t, "10-minute catch-up sprint", sprint.Title)
	assert.Equal(t, model.TaskPending, sprint.Status)
	assert.Nil(t, sprint.TargetWords)
	assert.Equal(t, anchor.DueDate, sprint.DueDate)
	assert.Equal(t, anchor.DayIndex, sprint.DayIndex)
	assert.Equal(t, anchor.InsertRank+1, sprint.InsertRank)
}

func TestInsertCatchUpSprint_StacksAfterSameAnchor(t *testing.T) {
	tasks := samplePlan(t)
	anchor := tasks[4]

	once := InsertCatchUpSprint(tasks, "p1", anchor.ID, time.Now())
	twice := InsertCatchUpSprint(once, "p1", anchor.ID, time.Now())

	require.Len(t, twice, len(tasks)+2)
	SortPlan(twice)
	assert.Equal(t, 1, twice[5].InsertRank)
	assert.Equal(t, 2, twice[6].InsertRank)
	assert.Equal(t, anchor.ID, twice[4].ID)
}

func TestInsertCatchUpSprint_UnknownAnchorIsNoop(t *testing.T) {
	tasks := samplePlan(t)

	out := InsertCatchUpSprint(tasks, "p1", "does-not-exist", time.Now())

	require.Len(t, out, len(tasks))
	for i := range tasks {
		assert.Equal(t, tasks[i].ID, out[i].ID)
	}
}
