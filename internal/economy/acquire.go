package economy

import (
	"context"
	"fmt"

	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
	"github.com/hollyoak/GrazeGarden_Go/internal/event"
	"github.com/hollyoak/GrazeGarden_Go/internal/logger"
)

func (s *service) AcquireItem(ctx context.Context, userID string, category domain.ItemCategory, tier domain.Tier) (*AcquireResult, error) {
	log := logger.FromContext(ctx)

	if err := validatePurchase(userID, category, tier); err != nil {
		return nil, err
	}

	// Inventory is always preferred over spending: an owned unit makes the
	// acquisition free and leaves the ledger untouched.
	entries, err := s.inventory.GetInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	for _, entry := range entries {
		if entry.Category == category && entry.Tier == tier && entry.Quantity > 0 {
			stats, err := s.stats.GetGardenStats(ctx, userID)
			if err != nil {
				return nil, fmt.Errorf("failed to get garden stats: %w", err)
			}
			log.Info(LogMsgAcquiredFromInventory, "user_id", userID, "category", category, "tier", tier)
			return &AcquireResult{
				Item:              domain.ItemRef{Category: entry.Category, ItemType: entry.ItemType, Tier: entry.Tier},
				FromInventory:     true,
				CurrencyAvailable: stats.CurrencyAvailable,
			}, nil
		}
	}

	missing, err := s.missingPrerequisite(ctx, userID, category, tier)
	if err != nil {
		return nil, err
	}
	if missing {
		return nil, fmt.Errorf("%w: %s %s requires an owned %s", domain.ErrMissingPrerequisite, category, tier, tier.Previous())
	}

	item := domain.ItemRef{Category: category, ItemType: domain.DefaultItemType(category), Tier: tier}
	cost := domain.AcquisitionCost(category, tier)

	// Materialize first, debit second. A refused debit compensates the
	// materialization; a crash in between leaves an unpaid item, which the
	// reconciliation sweep reclaims for flowers and which otherwise favors
	// the user.
	if err := s.inventory.AddItem(ctx, userID, item, 1); err != nil {
		return nil, fmt.Errorf("failed to add item: %w", err)
	}
	if cost > 0 {
		ok, err := s.stats.DebitCurrency(ctx, userID, cost)
		if err != nil || !ok {
			if _, rbErr := s.inventory.RemoveItem(ctx, userID, item, 1); rbErr != nil {
				log.Error(LogMsgCompensationFailed, "user_id", userID, "category", category, "tier", tier, "error", rbErr)
			}
			if err != nil {
				return nil, fmt.Errorf("failed to debit currency: %w", err)
			}
			return nil, fmt.Errorf("%w: %s %s costs %d", domain.ErrInsufficientFunds, category, tier, cost)
		}
	}

	s.invalidate(userID)
	s.publish(ctx, event.NewGardenItemEvent(event.GardenItemAcquired, userID, item, nil, nil, cost))
	s.reconcileAfter(ctx, userID)

	stats, err := s.stats.GetGardenStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get garden stats: %w", err)
	}

	log.Info(LogMsgItemAcquired, "user_id", userID, "category", category, "tier", tier, "cost", cost)
	return &AcquireResult{Item: item, Spent: cost, CurrencyAvailable: stats.CurrencyAvailable}, nil
}
