package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"focus-writer/internal/model"
)

// MemoryStore keeps everything in process memory. Used by tests and by
// the anonymous single-user mode; same contract as the database store.
type MemoryStore struct {
	mu            sync.RWMutex
	settings      map[int]*model.UserSettings
	projects      map[string]*model.Project
	tasks         map[string]*model.Task
	sessions      map[string]*model.Session
	subscriptions map[int]*model.Subscription

	failNextCheckIn error // test hook
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		settings:      make(map[int]*model.UserSettings),
		projects:      make(map[string]*model.Project),
		tasks:         make(map[string]*model.Task),
		sessions:      make(map[string]*model.Session),
		subscriptions: make(map[int]*model.Subscription),
	}
}

// FailNextCheckIn makes the next CompleteCheckIn return err without
// applying either write.
func (s *MemoryStore) FailNextCheckIn(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNextCheckIn = err
}

func (s *MemoryStore) Settings(ctx context.Context, memberID int) (*model.UserSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if settings, ok := s.settings[memberID]; ok {
		cp := *settings
		return &cp, nil
	}
	return defaultSettings(memberID), nil
}

func (s *MemoryStore) SaveSettings(ctx context.Context, settings *model.UserSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *settings
	s.settings[settings.MemberID] = &cp
	return nil
}

func (s *MemoryStore) ActiveProject(ctx context.Context, memberID int) (*model.Project, error) {
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

func (s *MemoryStore) ProjectsByMember(ctx context.Context, memberID int) ([]model.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Project
	for _, p := range s.projects {
		if p.MemberID == memberID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.Before(out[b].CreatedAt) })
	return out, nil
}

func (s *MemoryStore) SaveProject(ctx context.Context, p *model.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.projects[p.ID] = &cp
	return nil
}

func (s *MemoryStore) TasksByProject(ctx context.Context, projectID string) ([]model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Task
	for _, t := range s.tasks {
		if t.ProjectID == projectID {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].DayIndex != out[b].DayIndex {
			return out[a].DayIndex < out[b].DayIndex
		}
		return out[a].InsertRank < out[b].InsertRank
	})
	return out, nil
}

func (s *MemoryStore) SaveTasks(ctx context.Context, tasks []model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range tasks {
		cp := t
		s.tasks[t.ID] = &cp
	}
	return nil
}

func (s *MemoryStore) SessionsByProject(ctx context.Context, projectID string, since *time.Time) ([]model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Session
	for _, sess := range s.sessions {
		if sess.ProjectID != projectID {
			continue
		}
		if since != nil && sess.CreatedAt.Before(*since) {
			continue
		}
		out = append(out, *sess)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.Before(out[b].CreatedAt) })
	return out, nil
}

func (s *MemoryStore) SaveSession(ctx context.Context, sess *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *sess
	s.sessions[sess.ID] = &cp
	return nil
}

func (s *MemoryStore) CompleteCheckIn(ctx context.Context, sess *model.Session, completedTaskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failNextCheckIn; err != nil {
		s.failNextCheckIn = nil
		return err
	}
	if completedTaskID != "" {
		if _, ok := s.tasks[completedTaskID]; !ok {
			return ErrNotFound
		}
	}
	cp := *sess
	s.sessions[sess.ID] = &cp
	if completedTaskID != "" {
		s.tasks[completedTaskID].Status = model.TaskCompleted
	}
	return nil
}

func (s *MemoryStore) Subscription(ctx context.Context, memberID int) (*model.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sub, ok := s.subscriptions[memberID]; ok {
		cp := *sub
		return &cp, nil
	}
	return &model.Subscription{MemberID: memberID, Status: model.SubFree}, nil
}

func (s *MemoryStore) SaveSubscription(ctx context.Context, sub *model.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *sub
	cp.UpdatedAt = time.Now()
	s.subscriptions[sub.MemberID] = &cp
	return nil
}
