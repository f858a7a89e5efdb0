package repository

import (
	"context"

	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
)

// Inventory defines the interface for owned-but-unplaced item counts.
//
// RemoveItem is a conditional decrement: it reports false when the user does
// not hold the requested quantity, leaving the row untouched. Quantities
// never go negative.
type Inventory interface {
	AddItem(ctx context.Context, userID string, item domain.ItemRef, quantity int) error
	RemoveItem(ctx context.Context, userID string, item domain.ItemRef, quantity int) (bool, error)
	GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error)
	// CountOwned sums owned quantity in a category; a nil tier counts all tiers.
	CountOwned(ctx context.Context, userID string, category domain.ItemCategory, tier *domain.Tier) (int, error)
}
