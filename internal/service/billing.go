package service

import (
	"context"
	"fmt"
	"time"

	"focus-writer/internal/model"
	"focus-writer/internal/store"
)

// freeHistoryDays is the trailing window non-paying members can see.
const freeHistoryDays = 14

// BillingService reports the subscription tier. The rest of the system
// only asks for the tier and the gates derived from it; how the tier got
// into the subscriptions table is the payment provider's business.
type BillingService struct {
	store store.Store
}

func NewBillingService(st store.Store) *BillingService { return &BillingService{store: st} }

// Tier resolves to free, trialing or active; any provider status that is
// not an entitled one degrades to free.
func (s *BillingService) Tier(ctx context.Context, memberID int) (string, error) {
	sub, err := s.store.Subscription(ctx, memberID)
	if err != nil {
		return "", fmt.Errorf("load subscription: %w", err)
	}
	switch sub.Status {
	case model.SubActive, model.SubTrialing:
		return sub.Status, nil
	default:
		return model.SubFree, nil
	}
}

// Paying reports whether the member is on an entitled tier.
func (s *BillingService) Paying(ctx context.Context, memberID int) (bool, error) {
	tier, err := s.Tier(ctx, memberID)
	if err != nil {
		return false, err
	}
	return tier == model.SubActive || tier == model.SubTrialing, nil
}

// HistoryWindow returns the earliest timestamp the member's history
// queries may reach back to, or nil when unrestricted.
func (s *BillingService) HistoryWindow(ctx context.Context, memberID int, now time.Time) (*time.Time, error) {
	paying, err := s.Paying(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if paying {
		return nil, nil
	}
	since := now.AddDate(0, 0, -freeHistoryDays)
	return &since, nil
}
