package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"focus-writer/internal/model"
	"focus-writer/internal/plan"
	"focus-writer/internal/store"
)

// ErrProjectLimit is returned when a free-tier member already has an
// active project.
var ErrProjectLimit = fmt.Errorf("active project limit reached for current plan")

// ProjectService handles onboarding and project selection.
type ProjectService struct {
	store   store.Store
	billing *BillingService
}

func NewProjectService(st store.Store, billing *BillingService) *ProjectService {
	return &ProjectService{store: st, billing: billing}
}

// Onboard creates the project, generates its 30-day plan and upserts the
// member's settings. daysPerWeek is validated at the binding layer; this
// is the caller that owns the 1-7 precondition of the generator.
func (s *ProjectService) Onboard(ctx context.Context, memberID int, req model.OnboardingRequest) (*model.Project, []model.Task, error) {
	startDate, err := time.Parse(model.DateLayout, req.StartDate)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid start date %q: %w", req.StartDate, err)
	}
	if req.DaysPerWeek < 1 || req.DaysPerWeek > 7 {
		return nil, nil, fmt.Errorf("daysPerWeek must be between 1 and 7")
	}

	projects, err := s.store.ProjectsByMember(ctx, memberID)
	if err != nil {
		return nil, nil, err
	}
	active := 0
	for _, p := range projects {
		if p.Status == model.ProjectActive {
			active++
		}
	}
	if active > 0 {
		paying, err := s.billing.Paying(ctx, memberID)
		if err != nil {
			return nil, nil, err
		}
		if !paying {
			return nil, nil, ErrProjectLimit
		}
	}

	now := time.Now()
	project := &model.Project{
		ID:               uuid.NewString(),
		MemberID:         memberID,
		Title:            req.ProjectTitle,
		Status:           model.ProjectActive,
		StartDate:        req.StartDate,
		TotalTargetWords: req.TotalTargetWords,
		CreatedAt:        now,
	}
	tasks := plan.GenerateTasks(project.ID, plan.Onboarding{
		TotalTargetWords: req.TotalTargetWords,
		StartDate:        startDate,
		DaysPerWeek:      req.DaysPerWeek,
	}, now)

	if err := s.store.SaveProject(ctx, project); err != nil {
		return nil, nil, fmt.Errorf("save project: %w", err)
	}
	if err := s.store.SaveTasks(ctx, tasks); err != nil {
		return nil, nil, fmt.Errorf("save tasks: %w", err)
	}

	settings, err := s.store.Settings(ctx, memberID)
	if err != nil {
		return nil, nil, err
	}
	settings.DaysPerWeek = req.DaysPerWeek
	if req.PreferredSessionLength > 0 {
		settings.PreferredMinutes = req.PreferredSessionLength
	}
	if req.Timezone != "" {
		settings.Timezone = req.Timezone
	}
	settings.ActiveProjectID = &project.ID
	if err := s.store.SaveSettings(ctx, settings); err != nil {
		return nil, nil, fmt.Errorf("save settings: %w", err)
	}

	return project, tasks, nil
}

// SetActive points the member's settings at the given project.
func (s *ProjectService) SetActive(ctx context.Context, memberID int, projectID string) error {
	projects, err := s.store.ProjectsByMember(ctx, memberID)
	if err != nil {
		return err
	}
	found := false
	for _, p := range projects {
		if p.ID == projectID {
			found = true
			break
		}
	}
	if !found {
		return store.ErrNotFound
	}
	settings, err := s.store.Settings(ctx, memberID)
	if err != nil {
		return err
	}
	settings.ActiveProjectID = &projectID
	return s.store.SaveSettings(ctx, settings)
}
