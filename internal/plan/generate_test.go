package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focus-writer/internal/model"
)

func date(s string) time.Time {
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func intp(n int) *int { return &n }

func TestGenerateTasks_AlwaysThirtyTasks(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	for daysPerWeek := 1; daysPerWeek <= 7; daysPerWeek++ {
		tasks := GenerateTasks("p1", Onboarding{
			StartDate:   date("2026-08-01"),
			DaysPerWeek: daysPerWeek,
		}, now)

		require.Len(t, tasks, TotalDays, "daysPerWeek=%d", daysPerWeek)

		seen := make(map[int]bool)
		prev := ""
		for _, task := range tasks {
			assert.False(t, seen[task.DayIndex], "duplicate dayIndex %d", task.DayIndex)
			seen[task.DayIndex] = true
			assert.GreaterOrEqual(t, task.DayIndex, 0)
			assert.Less(t, task.DayIndex, TotalDays)
			assert.GreaterOrEqual(t, task.DueDate, prev, "due dates must be non-decreasing")
			prev = task.DueDate

			assert.Equal(t, "p1", task.ProjectID)
			assert.Equal(t, model.TaskPending, task.Status)
			assert.Equal(t, 0, task.InsertRank)
			assert.NotEmpty(t, task.ID)
		}
	}
}

func TestGenerateTasks_EveryDayCadence(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	tasks := GenerateTasks("p1", Onboarding{
		StartDate:   date("2026-08-01"),
		DaysPerWeek: 7,
	}, now)

	require.Len(t, tasks, TotalDays)
	for i, task := range tasks {
		want := date("2026-08-01").AddDate(0, 0, i).Format(model.DateLayout)
		assert.Equal(t, want, task.DueDate, "task %d", i)
	}
}

func TestGenerateTasks_WordTargets(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	tasks := GenerateTasks("p1", Onboarding{
		TotalTargetWords: intp(50000),
		StartDate:        date("2026-08-01"),
		DaysPerWeek:      7,
	}, now)

	for _, task := range tasks {
		if task.Kind == model.KindWriting {
			require.NotNil(t, task.TargetWords, "writing task %q", task.Title)
			assert.Equal(t, 1667, *task.TargetWords) // ceil(50000/30)
		} else {
			assert.Nil(t, task.TargetWords, "non-writing task %q", task.Title)
		}
	}
}

func TestGenerateTasks_NoGoalNoTargets(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	tasks := GenerateTasks("p1", Onboarding{
		StartDate:   date("2026-08-01"),
		DaysPerWeek: 7,
	}, now)

	for _, task := range tasks {
		assert.Nil(t, task.TargetWords)
	}
}

func TestIsActiveDay(t *testing.T) {
	tests := []struct {
		name        string
		daysPerWeek int
		active      []int
		inactive    []int
	}{
		{"seven days", 7, []int{0, 1, 2, 3, 4, 5, 6, 7}, nil},
		{"six days rests weekly", 6, []int{1, 2, 3, 4, 5, 6, 8}, []int{0, 7, 14}},
		{"five days skips weekend", 5, []int{1, 2, 3, 4, 5, 8}, []int{0, 6, 7, 13}},
		{"three days every other", 3, []int{0, 2, 4, 6, 8}, []int{1, 3, 5, 7}},
		{"one day weekly", 1, []int{0, 7, 14}, []int{1, 3, 6, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, offset := range tt.active {
				assert.True(t, isActiveDay(offset, tt.daysPerWeek), "offset %d", offset)
			}
			for _, offset := range tt.inactive {
				assert.False(t, isActiveDay(offset, tt.daysPerWeek), "offset %d", offset)
			}
		})
	}
}

func TestCurriculumShape(t *testing.T) {
	require.GreaterOrEqual(t, len(curriculum), TotalDays)

	kinds := map[string]int{}
	for _, tpl := range curriculum[:TotalDays] {
		kinds[tpl.Kind]++
	}
	assert.Equal(t, 1, kinds[model.KindPlanning])
	assert.Greater(t, kinds[model.KindWriting], kinds[model.KindReview])
}
