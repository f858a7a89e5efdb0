package economy

import (
	"context"
	"fmt"

	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
	"github.com/hollyoak/GrazeGarden_Go/internal/event"
	"github.com/hollyoak/GrazeGarden_Go/internal/logger"
)

func (s *service) UpgradeItem(ctx context.Context, userID string, item domain.ItemRef, pos *domain.GridPos) (*UpgradeResult, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, fmt.Errorf("%w: missing user id", domain.ErrInvalidInput)
	}
	if !item.Category.Valid() || !item.Tier.Valid() {
		return nil, fmt.Errorf("%w: unknown item %s %s", domain.ErrInvalidInput, item.Category, item.Tier)
	}
	next := item.Tier.Next()
	if next == "" {
		return nil, fmt.Errorf("%w: %s tier cannot be upgraded", domain.ErrInvalidInput, item.Tier)
	}
	cost := next.UpgradeCost()
	upgraded := item
	upgraded.Tier = next

	// The item being upgraded is itself the prerequisite for the next tier,
	// so no separate ownership-gate check is needed here.
	var err error
	if pos != nil {
		err = s.upgradeOnGrid(ctx, userID, item, next, cost, pos)
	} else {
		err = s.upgradeInInventory(ctx, userID, item, upgraded, cost)
	}
	if err != nil {
		return nil, err
	}

	s.invalidate(userID)

	var x, y *int
	if pos != nil {
		x, y = &pos.X, &pos.Y
	}
	s.publish(ctx, event.NewGardenItemEvent(event.GardenItemUpgraded, userID, upgraded, x, y, cost))
	s.reconcileAfter(ctx, userID)

	stats, err := s.stats.GetGardenStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get garden stats: %w", err)
	}

	log.Info(LogMsgItemUpgraded, "user_id", userID, "category", item.Category, "from", item.Tier, "to", next, "cost", cost)
	return &UpgradeResult{Item: upgraded, Spent: cost, CurrencyAvailable: stats.CurrencyAvailable}, nil
}

// upgradeOnGrid mutates a placed item's tier in place. The debit happens
// first; the tier write is a compare-and-set on the current tier, and a lost
// race refunds the debit.
func (s *service) upgradeOnGrid(ctx context.Context, userID string, item domain.ItemRef, next domain.Tier, cost int, pos *domain.GridPos) error {
	if !domain.InBounds(pos.X, pos.Y) {
		return fmt.Errorf("%w: (%d, %d)", domain.ErrOutOfBounds, pos.X, pos.Y)
	}

	placement, err := s.grid.GetPlacement(ctx, userID, pos.X, pos.Y)
	if err != nil {
		return fmt.Errorf("failed to get placement: %w", err)
	}
	if placement == nil || placement.Item() != item {
		return fmt.Errorf("%w: cell (%d, %d) does not hold that item", domain.ErrItemNotOwned, pos.X, pos.Y)
	}

	ok, err := s.stats.DebitCurrency(ctx, userID, cost)
	if err != nil {
		return fmt.Errorf("failed to debit currency: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: upgrade to %s costs %d", domain.ErrInsufficientFunds, next, cost)
	}

	ok, err = s.grid.UpdateTier(ctx, userID, pos.X, pos.Y, item.Tier, next)
	if err != nil || !ok {
		if crErr := s.stats.CreditCurrency(ctx, userID, cost); crErr != nil {
			logger.FromContext(ctx).Error(LogMsgCompensationFailed, "user_id", userID, "amount", cost, "error", crErr)
		}
		if err != nil {
			return fmt.Errorf("failed to update tier: %w", err)
		}
		return fmt.Errorf("%w: cell (%d, %d) changed underneath the upgrade", domain.ErrItemNotOwned, pos.X, pos.Y)
	}
	return nil
}

// upgradeInInventory swaps one inventory unit for one at the next tier.
// Withdrawal doubles as the ownership check; a refused debit puts the
// original back.
func (s *service) upgradeInInventory(ctx context.Context, userID string, item, upgraded domain.ItemRef, cost int) error {
	log := logger.FromContext(ctx)

	ok, err := s.inventory.RemoveItem(ctx, userID, item, 1)
	if err != nil {
		return fmt.Errorf("failed to remove item: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: no %s %s %s in inventory", domain.ErrItemNotOwned, item.Tier, item.Category, item.ItemType)
	}

	ok, err = s.stats.DebitCurrency(ctx, userID, cost)
	if err != nil || !ok {
		if addErr := s.inventory.AddItem(ctx, userID, item, 1); addErr != nil {
			log.Error(LogMsgCompensationFailed, "user_id", userID, "item_type", item.ItemType, "error", addErr)
		}
		if err != nil {
			return fmt.Errorf("failed to debit currency: %w", err)
		}
		return fmt.Errorf("%w: upgrade to %s costs %d", domain.ErrInsufficientFunds, upgraded.Tier, cost)
	}

	if err := s.inventory.AddItem(ctx, userID, upgraded, 1); err != nil {
		if crErr := s.stats.CreditCurrency(ctx, userID, cost); crErr != nil {
			log.Error(LogMsgCompensationFailed, "user_id", userID, "amount", cost, "error", crErr)
		}
		if addErr := s.inventory.AddItem(ctx, userID, item, 1); addErr != nil {
			log.Error(LogMsgCompensationFailed, "user_id", userID, "item_type", item.ItemType, "error", addErr)
		}
		return fmt.Errorf("failed to add upgraded item: %w", err)
	}
	return nil
}
