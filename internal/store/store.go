package store

import (
	"context"
	"errors"
	"time"

	"focus-writer/internal/model"
)

// ErrNotFound is returned when a looked-up record does not exist.
var ErrNotFound = errors.New("not found")

// Store is the persistence collaborator: upsert-by-id semantics for
// projects, tasks and sessions, replace semantics for settings.
type Store interface {
	Settings(ctx context.Context, memberID int) (*model.UserSettings, error)
	SaveSettings(ctx context.Context, s *model.UserSettings) error

	// ActiveProject resolves via the default-selection rule below.
	ActiveProject(ctx context.Context, memberID int) (*model.Project, error)
	ProjectsByMember(ctx context.Context, memberID int) ([]model.Project, error)
	SaveProject(ctx context.Context, p *model.Project) error

	TasksByProject(ctx context.Context, projectID string) ([]model.Task, error)
	SaveTasks(ctx context.Context, tasks []model.Task) error

	SessionsByProject(ctx context.Context, projectID string, since *time.Time) ([]model.Session, error)
	SaveSession(ctx context.Context, s *model.Session) error

	// CompleteCheckIn writes the session and, when completedTaskID is
	// non-empty, marks that task completed. The two writes are one
	// logical unit: on error neither is considered applied.
	CompleteCheckIn(ctx context.Context, s *model.Session, completedTaskID string) error

	Subscription(ctx context.Context, memberID int) (*model.Subscription, error)
	SaveSubscription(ctx context.Context, sub *model.Subscription) error
}

// pickActiveProject is the named default-selection rule: the project the
// settings point at when it exists, otherwise the earliest-created
// active project.
func pickActiveProject(settings *model.UserSettings, projects []model.Project) *model.Project {
	if settings != nil && settings.ActiveProjectID != nil {
		for i := range projects {
			if projects[i].ID == *settings.ActiveProjectID {
				return &projects[i]
			}
		}
	}
	var oldest *model.Project
	for i := range projects {
		if projects[i].Status != model.ProjectActive {
			continue
		}
		if oldest == nil || projects[i].CreatedAt.Before(oldest.CreatedAt) {
			oldest = &projects[i]
		}
	}
	return oldest
}

// defaultSettings is the singleton row minted on first read.
func defaultSettings(memberID int) *model.UserSettings {
	return &model.UserSettings{
		MemberID:         memberID,
		Timezone:         "UTC",
		PreferredMinutes: 25,
		DaysPerWeek:      7,
	}
}
