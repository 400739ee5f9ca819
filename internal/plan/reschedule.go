package plan

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"focus-writer/internal/model"
)

// RescheduleTasks marks the missed tasks skipped and shifts every task
// still pending onto consecutive calendar days starting today. Skipped
// and completed tasks keep their original due dates. When reduceTargets
// is set, each rescheduled word target is cut by 20% (rounded up) once;
// a task already reduced by an earlier recalibration is left alone.
func RescheduleTasks(tasks []model.Task, missedTaskIDs []string, reduceTargets bool, today time.Time) []model.Task {
	missed := make(map[string]bool, len(missedTaskIDs))
	for _, id := range missedTaskIDs {
		missed[id] = true
	}

	out := make([]model.Task, len(tasks))
	copy(out, tasks)

	for i := range out {
		if missed[out[i].ID] {
			out[i].Status = model.TaskSkipped
		}
	}

	// Reassign due dates in plan order so the pending run stays gap-free.
	order := make([]int, 0, len(out))
	for i, t := range out {
		if t.Status == model.TaskPending {
			order = append(order, i)
		}
	}
	sort.Slice(order, func(a, b int) bool {
		ta, tb := out[order[a]], out[order[b]]
		if ta.DayIndex != tb.DayIndex {
			return ta.DayIndex < tb.DayIndex
		}
		return ta.InsertRank < tb.InsertRank
	})

	current := today
	for _, i := range order {
		out[i].DueDate = current.Format(model.DateLayout)
		current = current.AddDate(0, 0, 1)

		if reduceTargets && out[i].TargetWords != nil && !out[i].TargetReduced {
			reduced := ceilDiv(*out[i].TargetWords*8, 10)
			out[i].TargetWords = &reduced
			out[i].TargetReduced = true
		}
	}

	return out
}

// InsertCatchUpSprint adds a short low-stakes task directly after the
// anchor task. An unknown anchor id is a no-op, not an error.
func InsertCatchUpSprint(tasks []model.Task, projectID, afterTaskID string, now time.Time) []model.Task {
	anchor := -1
	for i, t := range tasks {
		if t.ID == afterTaskID {
			anchor = i
			break
		}
	}
	if anchor < 0 {
		return tasks
	}

	after := tasks[anchor]
	rank := after.InsertRank + 1
	for _, t := range tasks {
		if t.DayIndex == after.DayIndex && t.InsertRank >= rank {
			rank = t.InsertRank + 1
		}
	}

	sprint := model.Task{
		ID:         uuid.NewString(),
		ProjectID:  projectID,
		DayIndex:   after.DayIndex,
		InsertRank: rank,
		DueDate:    after.DueDate,
		Title:      "10-minute catch-up sprint",
		Kind:       model.KindCatchUp,
		Status:     model.TaskPending,
		CreatedAt:  now,
	}

	out := make([]model.Task, 0, len(tasks)+1)
	out = append(out, tasks[:anchor+1]...)
	out = append(out, sprint)
	out = append(out, tasks[anchor+1:]...)
	return out
}

// SortPlan orders tasks for display: by day index, then insertion rank.
func SortPlan(tasks []model.Task) {
	sort.SliceStable(tasks, func(a, b int) bool {
		if tasks[a].DayIndex != tasks[b].DayIndex {
			return tasks[a].DayIndex < tasks[b].DayIndex
		}
		return tasks[a].InsertRank < tasks[b].InsertRank
	})
}
