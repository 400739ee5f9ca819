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

func TestBillingService_Tier(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewBillingService(st)
	ctx := context.Background()

	tier, err := svc.Tier(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, model.SubFree, tier)

	require.NoError(t, st.SaveSubscription(ctx, &model.Subscription{MemberID: 1, Status: model.SubTrialing}))
	tier, err = svc.Tier(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, model.SubTrialing, tier)

	// Unknown provider statuses degrade to free.
	require.NoError(t, st.SaveSubscription(ctx, &model.Subscription{MemberID: 1, Status: "past_due"}))
	tier, err = svc.Tier(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, model.SubFree, tier)
}

func TestProgress_FreeTierClipsHistory(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()
	project, _ := seedPlan(t, st)

	old := model.Session{
		ID:        "old",
		ProjectID: project.ID,
		Completed: true,
		Minutes:   30,
		Words:     intp(500),
		CreatedAt: time.Now().AddDate(0, 0, -20),
	}
	recent := model.Session{
		ID:        "recent",
		ProjectID: project.ID,
		Completed: true,
		Minutes:   25,
		Words:     intp(700),
		CreatedAt: time.Now().AddDate(0, 0, -1),
	}
	require.NoError(t, st.SaveSession(ctx, &old))
	require.NoError(t, st.SaveSession(ctx, &recent))

	svc := NewProgressService(st, NewBillingService(st))

	p, err := svc.Progress(ctx, 1)
	require.NoError(t, err)
	require.Len(t, p.Series, 1)
	assert.Equal(t, 700, p.Series[0].Words)
	assert.True(t, p.Clipped)

	// A paying tier sees the full history.
	require.NoError(t, st.SaveSubscription(ctx, &model.Subscription{MemberID: 1, Status: model.SubActive}))
	p, err = svc.Progress(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, p.Series, 2)
	assert.False(t, p.Clipped)
}

func TestProgress_MomentumSeesFullHistory(t *testing.T) {
	st := store.NewMemoryStore()
	ctx := context.Background()
	project, _ := seedPlan(t, st)

	// Ten successful sessions outside the free window still feed momentum
	// via completed tasks, while the chart stays clipped.
	old := model.Session{
		ID:        "old",
		ProjectID: project.ID,
		Completed: true,
		Minutes:   30,
		CreatedAt: time.Now().AddDate(0, 0, -20),
	}
	require.NoError(t, st.SaveSession(ctx, &old))

	p, err := NewProgressService(st, NewBillingService(st)).Progress(ctx, 1)
	require.NoError(t, err)
	assert.NotZero(t, p.Momentum.Score)
	assert.Empty(t, p.Series)
}
