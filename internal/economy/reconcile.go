package economy

import (
	"context"
	"fmt"

	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
	"github.com/hollyoak/GrazeGarden_Go/internal/event"
	"github.com/hollyoak/GrazeGarden_Go/internal/logger"
)

// Reconcile repairs a desync between materialized flowers and the currency
// balance backing them, usually after an external correction to the stats
// row. Reclaimed items credit nothing: this is a repair, not a sale.
func (s *service) Reconcile(ctx context.Context, userID string) (*ReconcileResult, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, fmt.Errorf("%w: missing user id", domain.ErrInvalidInput)
	}

	stats, err := s.stats.GetGardenStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get garden stats: %w", err)
	}
	placed, err := s.grid.CountPlaced(ctx, userID, domain.CategoryFlower, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count placements: %w", err)
	}
	owned, err := s.inventory.CountOwned(ctx, userID, domain.CategoryFlower, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to count inventory: %w", err)
	}

	total := placed + owned
	result := &ReconcileResult{FlowerCount: total, CurrencyAvailable: stats.CurrencyAvailable}
	excess := total - stats.CurrencyAvailable
	if excess <= 0 {
		return result, nil
	}

	log.Warn(LogMsgReconcileExcess,
		"user_id", userID,
		"flower_count", total,
		"currency_available", stats.CurrencyAvailable)

	// Placed flowers go first, newest placement first.
	for result.RemovedFromGrid < excess {
		removed, err := s.grid.RemoveNewest(ctx, userID, domain.CategoryFlower)
		if err != nil {
			return result, fmt.Errorf("failed to remove placement: %w", err)
		}
		if removed == nil {
			break
		}
		result.RemovedFromGrid++
		log.Info(LogMsgReconcileRemoved, "user_id", userID, "x", removed.X, "y", removed.Y, "item_type", removed.ItemType)
	}

	// Spill into inventory when the grid alone cannot cover the excess.
	remaining := excess - result.RemovedFromGrid
	if remaining > 0 {
		entries, err := s.inventory.GetInventory(ctx, userID)
		if err != nil {
			return result, fmt.Errorf("failed to get inventory: %w", err)
		}
		for _, entry := range entries {
			if remaining == 0 {
				break
			}
			if entry.Category != domain.CategoryFlower || entry.Quantity <= 0 {
				continue
			}
			n := min(entry.Quantity, remaining)
			ref := domain.ItemRef{Category: entry.Category, ItemType: entry.ItemType, Tier: entry.Tier}
			ok, err := s.inventory.RemoveItem(ctx, userID, ref, n)
			if err != nil {
				return result, fmt.Errorf("failed to remove item: %w", err)
			}
			if ok {
				result.RemovedFromInventory += n
				remaining -= n
			}
		}
	}

	removedTotal := result.RemovedFromGrid + result.RemovedFromInventory
	result.FlowerCount = total - removedTotal

	s.publish(ctx, event.NewReconciledEvent(userID, removedTotal, 0))
	log.Info(LogMsgReconciled, "user_id", userID, "removed", removedTotal, "flower_count", result.FlowerCount)
	return result, nil
}
