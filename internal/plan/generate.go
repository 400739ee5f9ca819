package plan

import (
	"time"

	"github.com/google/uuid"

	"focus-writer/internal/model"
)

// Onboarding is the subset of onboarding answers the generator needs.
type Onboarding struct {
	TotalTargetWords *int
	StartDate        time.Time
	DaysPerWeek      int // 1-7, validated by the caller
}

// GenerateTasks walks calendar days forward from the start date and
// assigns the 30 curriculum templates, in order, to active days. The
// result always holds exactly 30 tasks with DayIndex 0..29 and
// non-decreasing due dates.
func GenerateTasks(projectID string, ob Onboarding, now time.Time) []model.Task {
	var wordsPerDay *int
	if ob.TotalTargetWords != nil {
		w := ceilDiv(*ob.TotalTargetWords, TotalDays)
		wordsPerDay = &w
	}

	tasks := make([]model.Task, 0, TotalDays)
	current := ob.StartDate
	dayOffset := 0
	taskIndex := 0

	for taskIndex < TotalDays {
		if isActiveDay(dayOffset, ob.DaysPerWeek) {
			tpl := curriculum[taskIndex]
			var target *int
			if tpl.Kind == model.KindWriting && wordsPerDay != nil {
				w := *wordsPerDay
				target = &w
			}
			tasks = append(tasks, model.Task{
				ID:          uuid.NewString(),
				ProjectID:   projectID,
				DayIndex:    taskIndex,
				DueDate:     current.Format(model.DateLayout),
				Title:       tpl.Title,
				TargetWords: target,
				Kind:        tpl.Kind,
				Status:      model.TaskPending,
				CreatedAt:   now,
			})
			taskIndex++
		}
		current = current.AddDate(0, 0, 1)
		dayOffset++
	}

	return tasks
}

// isActiveDay decides whether the day at the given offset from the start
// receives a task, given the weekly cadence.
func isActiveDay(dayOffset, daysPerWeek int) bool {
	if daysPerWeek >= 7 {
		return true
	}
	if daysPerWeek == 6 {
		return dayOffset%7 != 0 // one rest day per week
	}
	if daysPerWeek == 5 {
		return dayOffset%7 != 0 && dayOffset%7 != 6 // weekend skip
	}
	// Fewer days: spread evenly across the week.
	interval := 7 / daysPerWeek
	return dayOffset%interval == 0
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
