package repository

import (
	"context"

	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
)

// Reward defines the interface for the append-only reward event log.
//
// InsertRewardEvent reports false without error when an event for the same
// source session already exists; the unique constraint backs the session
// engine's idempotent-completion guarantee.
type Reward interface {
	InsertRewardEvent(ctx context.Context, event *domain.RewardEvent) (bool, error)
	ListRewardEvents(ctx context.Context, userID string, limit int) ([]domain.RewardEvent, error)
}
