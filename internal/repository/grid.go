package repository

import (
	"context"
	"time"

	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
)

// Grid defines the interface for garden grid placements.
//
// PlaceItem relies on the store's (user_id, pos_x, pos_y) uniqueness
// constraint: a concurrent placement on the same empty cell loses cleanly
// (false, nil) instead of overwriting. ReplaceItem and UpdateTier are
// compare-and-set updates guarded by the expected current occupant.
type Grid interface {
	PlaceItem(ctx context.Context, placement *domain.GridPlacement) (bool, error)
	ReplaceItem(ctx context.Context, userID string, x, y int, expect, next domain.ItemRef, placedAt time.Time) (bool, error)
	RemovePlacement(ctx context.Context, userID string, x, y int) (*domain.GridPlacement, error)
	GetPlacement(ctx context.Context, userID string, x, y int) (*domain.GridPlacement, error)
	GetGrid(ctx context.Context, userID string) ([]domain.GridPlacement, error)
	// CountPlaced counts placed items in a category; a nil tier counts all tiers.
	CountPlaced(ctx context.Context, userID string, category domain.ItemCategory, tier *domain.Tier) (int, error)
	UpdateTier(ctx context.Context, userID string, x, y int, from, to domain.Tier) (bool, error)

	// RemoveNewest deletes the most recently placed item of the category,
	// returning it, or nil when none match. Used by the currency
	// reconciliation sweep.
	RemoveNewest(ctx context.Context, userID string, category domain.ItemCategory) (*domain.GridPlacement, error)
}
