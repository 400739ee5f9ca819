package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focus-writer/internal/model"
)

func TestActiveProject_DefaultSelectionRule(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	_, err := st.ActiveProject(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	older := &model.Project{ID: "a", MemberID: 1, Status: model.ProjectActive, CreatedAt: time.Now().Add(-time.Hour)}
	newer := &model.Project{ID: "b", MemberID: 1, Status: model.ProjectActive, CreatedAt: time.Now()}
	archived := &model.Project{ID: "c", MemberID: 1, Status: model.ProjectArchived, CreatedAt: time.Now().Add(-2 * time.Hour)}
	require.NoError(t, st.SaveProject(ctx, newer))
	require.NoError(t, st.SaveProject(ctx, older))
	require.NoError(t, st.SaveProject(ctx, archived))

	// No explicit selection: earliest-created active project wins;
	// archived projects never do.
	active, err := st.ActiveProject(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "a", active.ID)

	// An explicit selection overrides the default.
	settings, err := st.Settings(ctx, 1)
	require.NoError(t, err)
	id := "b"
	settings.ActiveProjectID = &id
	require.NoError(t, st.SaveSettings(ctx, settings))

	active, err = st.ActiveProject(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "b", active.ID)
}

func TestCompleteCheckIn_UnknownTaskAppliesNothing(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	sess := &model.Session{ID: "s1", ProjectID: "p1", Completed: true, Minutes: 20, CreatedAt: time.Now()}
	err := st.CompleteCheckIn(ctx, sess, "no-such-task")
	require.Error(t, err)

	sessions, err := st.SessionsByProject(ctx, "p1", nil)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestSessionsByProject_SinceFilter(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, st.SaveSession(ctx, &model.Session{ID: "old", ProjectID: "p1", CreatedAt: time.Now().AddDate(0, 0, -30)}))
	require.NoError(t, st.SaveSession(ctx, &model.Session{ID: "new", ProjectID: "p1", CreatedAt: time.Now()}))
	require.NoError(t, st.SaveSession(ctx, &model.Session{ID: "other", ProjectID: "p2", CreatedAt: time.Now()}))

	since := time.Now().AddDate(0, 0, -7)
	sessions, err := st.SessionsByProject(ctx, "p1", &since)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "new", sessions[0].ID)
}
