package service

import (
	"context"
	"time"

	"focus-writer/internal/model"
	"focus-writer/internal/momentum"
	"focus-writer/internal/store"
)

// ProgressService builds the progress view: a per-day words/minutes
// series plus the current momentum summary. History depth is clipped by
// the billing tier.
type ProgressService struct {
	store   store.Store
	billing *BillingService
}

func NewProgressService(st store.Store, billing *BillingService) *ProgressService {
	return &ProgressService{store: st, billing: billing}
}

type Progress struct {
	Momentum model.MomentumData    `json:"momentum"`
	Series   []model.ProgressPoint `json:"series"`
	Clipped  bool                  `json:"historyClipped"`
}

func (s *ProgressService) Progress(ctx context.Context, memberID int) (*Progress, error) {
	project, err := s.store.ActiveProject(ctx, memberID)
	if err != nil {
		return nil, err
	}
	now := time.Now()

	tasks, err := s.store.TasksByProject(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	allSessions, err := s.store.SessionsByProject(ctx, project.ID, nil)
	if err != nil {
		return nil, err
	}

	since, err := s.billing.HistoryWindow(ctx, memberID, now)
	if err != nil {
		return nil, err
	}
	visible := allSessions
	if since != nil {
		visible, err = s.store.SessionsByProject(ctx, project.ID, since)
		if err != nil {
			return nil, err
		}
	}

	byDay := make(map[string]*model.ProgressPoint)
	var order []string
	for _, sess := range visible {
		day := sess.CreatedAt.Format(model.DateLayout)
		p, ok := byDay[day]
		if !ok {
			p = &model.ProgressPoint{Date: day}
			byDay[day] = p
			order = append(order, day)
		}
		p.Minutes += sess.Minutes
		if sess.Words != nil {
			p.Words += *sess.Words
		}
	}
	series := make([]model.ProgressPoint, 0, len(order))
	for _, day := range order {
		series = append(series, *byDay[day])
	}

	// Momentum always sees the full history; only the chart is clipped.
	return &Progress{
		Momentum: momentum.Calculate(tasks, allSessions, now),
		Series:   series,
		Clipped:  since != nil && len(visible) < len(allSessions),
	}, nil
}
