package momentum

import (
	"math"
	"sort"
	"time"

	"focus-writer/internal/model"
)

// Calculate derives the momentum score, status, internal streak and quit
// risk from task and session history. It is a pure function of its inputs
// and the reference time, recomputed on every read and never persisted.
func Calculate(tasks []model.Task, sessions []model.Session, now time.Time) model.MomentumData {
	today := now.Format(model.DateLayout)

	var due, completed int
	for _, t := range tasks {
		if t.DueDate <= today {
			due++
			if t.Status == model.TaskCompleted {
				completed++
			}
		}
	}

	// No work due yet means a perfect rate, not a penalty.
	completionRate := 1.0
	if due > 0 {
		completionRate = float64(completed) / float64(due)
	}

	sevenDaysAgo := now.AddDate(0, 0, -7)
	recent := 0
	for _, s := range sessions {
		if s.Completed && !s.CreatedAt.Before(sevenDaysAgo) {
			recent++
		}
	}
	activityBonus := recent * 5
	if activityBonus > 20 {
		activityBonus = 20
	}

	score := int(math.Round(completionRate*80)) + activityBonus
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	status := model.StatusOnTrack
	if completionRate < 0.7 {
		status = model.StatusBehind
	} else if completionRate < 0.9 {
		status = model.StatusSlightlyBehind
	}

	riskLevel, intervention := detectQuitRisk(tasks, sessions, now)

	return model.MomentumData{
		Score:          score,
		Status:         status,
		CompletedTasks: completed,
		TotalTasks:     len(tasks),
		Streak:         calculateStreak(tasks, now),
		RiskLevel:      riskLevel,
		Intervention:   intervention,
	}
}

// calculateStreak counts consecutive completed tasks walking backwards
// from today, stopping at the first gap of more than one day. Kept
// internal: only score and status are ever shown to the writer.
func calculateStreak(tasks []model.Task, now time.Time) int {
	var done []model.Task
	for _, t := range tasks {
		if t.Status == model.TaskCompleted {
			done = append(done, t)
		}
	}
	sort.Slice(done, func(a, b int) bool { return done[a].DueDate > done[b].DueDate })

	streak := 0
	check := now
	for _, t := range done {
		due, err := time.Parse(model.DateLayout, t.DueDate)
		if err != nil {
			break
		}
		diffDays := int(check.Sub(due).Hours() / 24)
		if diffDays <= 1 {
			streak++
			check = due
		} else {
			break
		}
	}
	return streak
}

// detectQuitRisk evaluates disengagement signals in strict priority
// order; the first match wins and at most one intervention is returned.
func detectQuitRisk(tasks []model.Task, sessions []model.Session, now time.Time) (string, *model.Intervention) {
	today := now.Format(model.DateLayout)
	weekAgo := now.AddDate(0, 0, -7)
	weekAgoDate := weekAgo.Format(model.DateLayout)

	// Tasks due in the trailing week that were skipped or left overdue.
	missedRecent := 0
	for _, t := range tasks {
		if t.DueDate < weekAgoDate || t.DueDate > today {
			continue
		}
		if t.Status == model.TaskSkipped || (t.Status == model.TaskPending && t.DueDate < today) {
			missedRecent++
		}
	}

	shortSessions := 0
	for _, s := range sessions {
		if s.Completed && s.Minutes < 10 && !s.CreatedAt.Before(weekAgo) {
			shortSessions++
		}
	}

	// Planned-vs-actual mismatch, kept as the short-session proxy: no
	// true start-time comparison is performed.
	timeMismatches := 0
	for _, s := range sessions {
		if s.Completed && s.PlannedTime != nil && s.Minutes < 15 {
			timeMismatches++
		}
	}

	switch {
	case missedRecent >= 2:
		return model.RiskHigh, &model.Intervention{
			Type:    model.InterventionRescueSprint,
			Message: "Looks like you've missed a couple days. That's okay - let's do a quick rescue sprint!",
			Action:  "Start a 10-minute mini session right now to rebuild momentum.",
		}
	case shortSessions >= 3:
		return model.RiskMedium, &model.Intervention{
			Type:    model.InterventionReduceTarget,
			Message: "Your recent sessions have been short. Let's adjust to match your current capacity.",
			Action:  "Reduce tomorrow's target by 20% and schedule a specific time.",
		}
	case timeMismatches >= 3:
		return model.RiskMedium, &model.Intervention{
			Type:    model.InterventionReschedule,
			Message: "There might be a mismatch between planned and actual writing times.",
			Action:  "Let's find a better time slot that works with your schedule.",
		}
	}
	return model.RiskLow, nil
}

// StatusText is the display line for a momentum status.
func StatusText(m model.MomentumData) string {
	switch m.Status {
	case model.StatusOnTrack:
		return "You're on track! Keep going."
	case model.StatusSlightlyBehind:
		return "Slightly behind, but easily recoverable."
	default:
		return "Behind schedule - let's recalibrate."
	}
}
