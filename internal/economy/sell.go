package economy

import (
	"context"
	"fmt"

	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
	"github.com/hollyoak/GrazeGarden_Go/internal/event"
	"github.com/hollyoak/GrazeGarden_Go/internal/logger"
)

func (s *service) SellItem(ctx context.Context, userID string, item domain.ItemRef, pos *domain.GridPos) (*SellResult, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, fmt.Errorf("%w: missing user id", domain.ErrInvalidInput)
	}
	if !item.Category.Valid() || !item.Tier.Valid() {
		return nil, fmt.Errorf("%w: unknown item %s %s", domain.ErrInvalidInput, item.Category, item.Tier)
	}

	if err := s.takeOwnedItem(ctx, userID, item, pos); err != nil {
		return nil, err
	}

	value := domain.SellValue(item.Category, item.Tier)
	if err := s.stats.CreditCurrency(ctx, userID, value); err != nil {
		// The item is already gone; hand it back rather than eat it.
		if addErr := s.inventory.AddItem(ctx, userID, item, 1); addErr != nil {
			log.Error(LogMsgCompensationFailed, "user_id", userID, "item_type", item.ItemType, "error", addErr)
		}
		return nil, fmt.Errorf("failed to credit currency: %w", err)
	}

	s.invalidate(userID)

	var x, y *int
	if pos != nil {
		x, y = &pos.X, &pos.Y
	}
	s.publish(ctx, event.NewGardenItemEvent(event.GardenItemSold, userID, item, x, y, value))
	s.reconcileAfter(ctx, userID)

	stats, err := s.stats.GetGardenStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get garden stats: %w", err)
	}

	log.Info(LogMsgItemSold, "user_id", userID, "category", item.Category, "tier", item.Tier, "credited", value)
	return &SellResult{Item: item, Credited: value, CurrencyAvailable: stats.CurrencyAvailable}, nil
}

// takeOwnedItem removes one unit of the item from the grid cell at pos, or
// from inventory when pos is nil. ErrItemNotOwned when the user holds no such
// unit there.
func (s *service) takeOwnedItem(ctx context.Context, userID string, item domain.ItemRef, pos *domain.GridPos) error {
	if pos == nil {
		ok, err := s.inventory.RemoveItem(ctx, userID, item, 1)
		if err != nil {
			return fmt.Errorf("failed to remove item: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: no %s %s %s in inventory", domain.ErrItemNotOwned, item.Tier, item.Category, item.ItemType)
		}
		return nil
	}

	if !domain.InBounds(pos.X, pos.Y) {
		return fmt.Errorf("%w: (%d, %d)", domain.ErrOutOfBounds, pos.X, pos.Y)
	}

	removed, err := s.grid.RemovePlacement(ctx, userID, pos.X, pos.Y)
	if err != nil {
		return fmt.Errorf("failed to remove placement: %w", err)
	}
	if removed == nil {
		return fmt.Errorf("%w: nothing placed at (%d, %d)", domain.ErrItemNotOwned, pos.X, pos.Y)
	}
	if removed.Item() != item {
		// Raced with a replacement; restore the actual occupant.
		if _, rbErr := s.grid.PlaceItem(ctx, removed); rbErr != nil {
			logger.FromContext(ctx).Error(LogMsgRestoreFailed, "user_id", userID, "x", pos.X, "y", pos.Y, "error", rbErr)
		}
		return fmt.Errorf("%w: cell (%d, %d) holds a different item", domain.ErrItemNotOwned, pos.X, pos.Y)
	}
	return nil
}
