package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"focus-writer/internal/model"
)

// GormStore backs the Store contract with a relational database.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

// AutoMigrate creates or updates the schema for every entity.
func (s *GormStore) AutoMigrate() error {
	return s.db.AutoMigrate(
		&model.Member{},
		&model.Project{},
		&model.Task{},
		&model.Session{},
		&model.UserSettings{},
		&model.Subscription{},
	)
}

func (s *GormStore) Settings(ctx context.Context, memberID int) (*model.UserSettings, error) {
	var settings model.UserSettings
	err := s.db.WithContext(ctx).Where("member_id = ?", memberID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return defaultSettings(memberID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("query settings: %w", err)
	}
	return &settings, nil
}

func (s *GormStore) SaveSettings(ctx context.Context, settings *model.UserSettings) error {
	return s.db.WithContext(ctx).Save(settings).Error
}

func (s *GormStore) ActiveProject(ctx context.Context, memberID int) (*model.Project, error) {
	settings, err := s.Settings(ctx, memberID)
	if err != nil {
		return nil, err
	}
	projects, err := s.ProjectsByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if p := pickActiveProject(settings, projects); p != nil {
		return p, nil
	}
	return nil, ErrNotFound
}

func (s *GormStore) ProjectsByMember(ctx context.Context, memberID int) ([]model.Project, error) {
	var projects []model.Project
	err := s.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at").
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	return projects, nil
}

func (s *GormStore) SaveProject(ctx context.Context, p *model.Project) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(p).Error
}

func (s *GormStore) TasksByProject(ctx context.Context, projectID string) ([]model.Task, error) {
	var tasks []model.Task
	err := s.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("day_index, insert_rank").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	return tasks, nil
}

func (s *GormStore) SaveTasks(ctx context.Context, tasks []model.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&tasks).Error
}

func (s *GormStore) SessionsByProject(ctx context.Context, projectID string, since *time.Time) ([]model.Session, error) {
	q := s.db.WithContext(ctx).Where("project_id = ?", projectID)
	if since != nil {
		q = q.Where("created_at >= ?", *since)
	}
	var sessions []model.Session
	if err := q.Order("created_at").Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	return sessions, nil
}

func (s *GormStore) SaveSession(ctx context.Context, sess *model.Session) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(sess).Error
}

func (s *GormStore) CompleteCheckIn(ctx context.Context, sess *model.Session, completedTaskID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(sess).Error; err != nil {
			return fmt.Errorf("insert session: %w", err)
		}
		if completedTaskID == "" {
			return nil
		}
		res := tx.Model(&model.Task{}).
			Where("id = ?", completedTaskID).
			Update("status", model.TaskCompleted)
		if res.Error != nil {
			return fmt.Errorf("complete task: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("complete task %s: %w", completedTaskID, ErrNotFound)
		}
		return nil
	})
}

func (s *GormStore) Subscription(ctx context.Context, memberID int) (*model.Subscription, error) {
	var sub model.Subscription
	err := s.db.WithContext(ctx).Where("member_id = ?", memberID).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.Subscription{MemberID: memberID, Status: model.SubFree}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query subscription: %w", err)
	}
	return &sub, nil
}

func (s *GormStore) SaveSubscription(ctx context.Context, sub *model.Subscription) error {
	sub.UpdatedAt = time.Now()
	return s.db.WithContext(ctx).Save(sub).Error
}
