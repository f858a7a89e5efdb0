package garden

import (
	"context"
	"fmt"

	"github.com/hollyoak/GrazeGarden_Go/internal/clock"
	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
	"github.com/hollyoak/GrazeGarden_Go/internal/event"
	"github.com/hollyoak/GrazeGarden_Go/internal/logger"
	"github.com/hollyoak/GrazeGarden_Go/internal/repository"
)

// PlaceResult contains the result of a placement. Displaced is set when a
// confirmed replacement pushed the previous occupant back into inventory.
type PlaceResult struct {
	Placement *domain.GridPlacement `json:"placement"`
	Displaced *domain.ItemRef       `json:"displaced,omitempty"`
}

// Service defines the interface for garden grid operations. Items move
// between inventory and grid only; nothing here creates or destroys them.
type Service interface {
	// PlaceItem puts one inventory-owned item onto the cell at (x, y).
	// Placing onto an occupied cell requires confirmReplace and kind
	// compatibility; the displaced item goes back to inventory.
	PlaceItem(ctx context.Context, userID string, x, y int, item domain.ItemRef, confirmReplace bool) (*PlaceResult, error)

	// RemoveItem clears the cell at (x, y) and returns its item to inventory.
	RemoveItem(ctx context.Context, userID string, x, y int) (*domain.GridPlacement, error)

	GetGrid(ctx context.Context, userID string) ([]domain.GridPlacement, error)
}

type service struct {
	grid      repository.Grid
	inventory repository.Inventory
	bus       event.Bus
	clk       clock.Clock
}

// NewService creates a new garden service
func NewService(grid repository.Grid, inventory repository.Inventory, bus event.Bus, clk clock.Clock) Service {
	return &service{
		grid:      grid,
		inventory: inventory,
		bus:       bus,
		clk:       clk,
	}
}

func (s *service) PlaceItem(ctx context.Context, userID string, x, y int, item domain.ItemRef, confirmReplace bool) (*PlaceResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: missing user id", domain.ErrInvalidInput)
	}
	if !domain.InBounds(x, y) {
		return nil, fmt.Errorf("%w: (%d, %d)", domain.ErrOutOfBounds, x, y)
	}
	if !item.Category.Valid() || !item.Tier.Valid() {
		return nil, fmt.Errorf("%w: unknown item %s %s", domain.ErrInvalidInput, item.Category, item.Tier)
	}

	// Withdrawal doubles as the ownership check. Every failure below hands
	// the unit back.
	ok, err := s.inventory.RemoveItem(ctx, userID, item, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to remove item: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: no %s %s %s in inventory", domain.ErrItemNotOwned, item.Tier, item.Category, item.ItemType)
	}

	occupant, err := s.grid.GetPlacement(ctx, userID, x, y)
	if err != nil {
		s.returnToInventory(ctx, userID, item)
		return nil, fmt.Errorf("failed to get placement: %w", err)
	}

	if occupant == nil {
		return s.placeOnEmpty(ctx, userID, x, y, item)
	}
	return s.replaceOccupant(ctx, userID, x, y, item, occupant, confirmReplace)
}

func (s *service) placeOnEmpty(ctx context.Context, userID string, x, y int, item domain.ItemRef) (*PlaceResult, error) {
	log := logger.FromContext(ctx)

	placement := &domain.GridPlacement{
		UserID:   userID,
		X:        x,
		Y:        y,
		Category: item.Category,
		ItemType: item.ItemType,
		Tier:     item.Tier,
		PlacedAt: s.clk.Now(),
	}

	ok, err := s.grid.PlaceItem(ctx, placement)
	if err != nil {
		s.returnToInventory(ctx, userID, item)
		return nil, fmt.Errorf("failed to place item: %w", err)
	}
	if !ok {
		// Lost the empty-cell race to a concurrent placement.
		s.returnToInventory(ctx, userID, item)
		return nil, fmt.Errorf("%w: (%d, %d)", domain.ErrCellTaken, x, y)
	}

	s.publish(ctx, event.NewGardenItemEvent(event.GardenItemPlaced, userID, item, &x, &y, 0))
	log.Info(LogMsgItemPlaced, "user_id", userID, "x", x, "y", y, "category", item.Category, "tier", item.Tier)
	return &PlaceResult{Placement: placement}, nil
}

func (s *service) replaceOccupant(ctx context.Context, userID string, x, y int, item domain.ItemRef, occupant *domain.GridPlacement, confirmReplace bool) (*PlaceResult, error) {
	log := logger.FromContext(ctx)

	if !confirmReplace {
		s.returnToInventory(ctx, userID, item)
		return nil, fmt.Errorf("%w: (%d, %d) is occupied, replacement not confirmed", domain.ErrCellTaken, x, y)
	}
	if item.Category.Kind() != occupant.Category.Kind() {
		s.returnToInventory(ctx, userID, item)
		return nil, fmt.Errorf("%w: %s cannot replace %s", domain.ErrIncompatibleReplacement, item.Category.Kind(), occupant.Category.Kind())
	}

	displaced := occupant.Item()
	ok, err := s.grid.ReplaceItem(ctx, userID, x, y, displaced, item, s.clk.Now())
	if err != nil {
		s.returnToInventory(ctx, userID, item)
		return nil, fmt.Errorf("failed to replace item: %w", err)
	}
	if !ok {
		// Occupant changed underneath the confirmation; the client must
		// re-confirm against the cell's new contents.
		s.returnToInventory(ctx, userID, item)
		return nil, fmt.Errorf("%w: (%d, %d) changed underneath the replacement", domain.ErrCellTaken, x, y)
	}

	// The displaced item is never destroyed.
	s.returnToInventory(ctx, userID, displaced)

	placement := &domain.GridPlacement{
		UserID:   userID,
		X:        x,
		Y:        y,
		Category: item.Category,
		ItemType: item.ItemType,
		Tier:     item.Tier,
		PlacedAt: s.clk.Now(),
	}

	s.publish(ctx, event.NewGardenItemEvent(event.GardenItemPlaced, userID, item, &x, &y, 0))
	log.Info(LogMsgItemReplaced,
		"user_id", userID,
		"x", x,
		"y", y,
		"category", item.Category,
		"displaced_category", displaced.Category)
	return &PlaceResult{Placement: placement, Displaced: &displaced}, nil
}

func (s *service) RemoveItem(ctx context.Context, userID string, x, y int) (*domain.GridPlacement, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, fmt.Errorf("%w: missing user id", domain.ErrInvalidInput)
	}
	if !domain.InBounds(x, y) {
		return nil, fmt.Errorf("%w: (%d, %d)", domain.ErrOutOfBounds, x, y)
	}

	removed, err := s.grid.RemovePlacement(ctx, userID, x, y)
	if err != nil {
		return nil, fmt.Errorf("failed to remove placement: %w", err)
	}
	if removed == nil {
		return nil, fmt.Errorf("%w: nothing placed at (%d, %d)", domain.ErrItemNotOwned, x, y)
	}

	s.returnToInventory(ctx, userID, removed.Item())

	s.publish(ctx, event.NewGardenItemEvent(event.GardenItemRemoved, userID, removed.Item(), &x, &y, 0))
	log.Info(LogMsgItemRemoved, "user_id", userID, "x", x, "y", y, "category", removed.Category)
	return removed, nil
}

func (s *service) GetGrid(ctx context.Context, userID string) ([]domain.GridPlacement, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: missing user id", domain.ErrInvalidInput)
	}
	placements, err := s.grid.GetGrid(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get grid: %w", err)
	}
	return placements, nil
}

// returnToInventory hands an item back after a failed or displacing
// placement. Failures are logged loudly; losing track of an owned item is
// worse than any placement error.
func (s *service) returnToInventory(ctx context.Context, userID string, item domain.ItemRef) {
	if err := s.inventory.AddItem(ctx, userID, item, 1); err != nil {
		logger.FromContext(ctx).Error(LogMsgReturnFailed, "user_id", userID, "item_type", item.ItemType, "error", err)
	}
}

// publish sends a grid event; publish failures are logged, never surfaced.
func (s *service) publish(ctx context.Context, evt event.Event) {
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishError, "error", err, "event_type", evt.Type)
	}
}
