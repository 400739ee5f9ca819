package service

import (
	"context"
	"strings"

	"focus-writer/internal/logger"
	"focus-writer/internal/model"
	"focus-writer/internal/store"
)

// MigrateService moves a client's locally-held records into durable
// storage under a newly-identified member. Upserts are keyed by each
// record's own id, so re-submission is safe.
type MigrateService struct {
	store store.Store
}

func NewMigrateService(st store.Store) *MigrateService { return &MigrateService{store: st} }

// Migrate attempts each category independently: a failure in one never
// blocks the others, and the result reports them separately.
func (s *MigrateService) Migrate(ctx context.Context, memberID int, payload model.MigrationPayload) model.MigrationResult {
	var result model.MigrationResult
	var errs []string

	for i := range payload.Projects {
		payload.Projects[i].MemberID = memberID
		if err := s.store.SaveProject(ctx, &payload.Projects[i]); err != nil {
			logger.Error("migrate.projects failed", "member_id", memberID, "err", err)
			result.ProjectsFailed = true
			errs = append(errs, "projects: "+err.Error())
			break
		}
	}

	if err := s.store.SaveTasks(ctx, payload.Tasks); err != nil {
		logger.Error("migrate.tasks failed", "member_id", memberID, "err", err)
		result.TasksFailed = true
		errs = append(errs, "tasks: "+err.Error())
	}

	for i := range payload.Sessions {
		if err := s.store.SaveSession(ctx, &payload.Sessions[i]); err != nil {
			logger.Error("migrate.sessions failed", "member_id", memberID, "err", err)
			result.SessionsFailed = true
			errs = append(errs, "sessions: "+err.Error())
			break
		}
	}

	result.Error = strings.Join(errs, "; ")
	if result.OK() {
		logger.Info("migrate.ok", "member_id", memberID,
			"projects", len(payload.Projects), "tasks", len(payload.Tasks), "sessions", len(payload.Sessions))
	}
	return result
}
