package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focus-writer/internal/model"
	"focus-writer/internal/store"
)

func migrationPayload() model.MigrationPayload {
	now := time.Now()
	return model.MigrationPayload{
		Projects: []model.Project{{
			ID:        "anon-proj",
			Title:     "Local Draft",
			Status:    model.ProjectActive,
			StartDate: now.Format(model.DateLayout),
			CreatedAt: now,
		}},
		Tasks: []model.Task{{
			ID:        "anon-task",
			ProjectID: "anon-proj",
			DayIndex:  0,
			DueDate:   now.Format(model.DateLayout),
			Title:     "Write your opening hook/first page",
			Kind:      model.KindWriting,
			Status:    model.TaskPending,
			CreatedAt: now,
		}},
		Sessions: []model.Session{{
			ID:        "anon-sess",
			ProjectID: "anon-proj",
			Completed: true,
			Minutes:   25,
			CreatedAt: now,
		}},
	}
}

func TestMigrate_UploadsAllCategories(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewMigrateService(st)
	ctx := context.Background()

	result := svc.Migrate(ctx, 7, migrationPayload())
	require.True(t, result.OK(), "unexpected failure: %s", result.Error)

	projects, err := st.ProjectsByMember(ctx, 7)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, 7, projects[0].MemberID)

	tasks, err := st.TasksByProject(ctx, "anon-proj")
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	sessions, err := st.SessionsByProject(ctx, "anon-proj", nil)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestMigrate_Idempotent(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewMigrateService(st)
	ctx := context.Background()

	require.True(t, svc.Migrate(ctx, 7, migrationPayload()).OK())
	require.True(t, svc.Migrate(ctx, 7, migrationPayload()).OK())

	projects, err := st.ProjectsByMember(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, projects, 1)

	tasks, err := st.TasksByProject(ctx, "anon-proj")
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestMigrate_EmptyPayload(t *testing.T) {
	svc := NewMigrateService(store.NewMemoryStore())
	assert.True(t, svc.Migrate(context.Background(), 7, model.MigrationPayload{}).OK())
}
