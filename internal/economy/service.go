package economy

import (
	"context"
	"fmt"

	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
	"github.com/hollyoak/GrazeGarden_Go/internal/event"
	"github.com/hollyoak/GrazeGarden_Go/internal/logger"
	"github.com/hollyoak/GrazeGarden_Go/internal/repository"
)

// Affordability reports whether a purchase can go through, and why not.
type Affordability struct {
	Category            domain.ItemCategory `json:"category"`
	Tier                domain.Tier         `json:"tier"`
	Cost                int                 `json:"cost"`
	CurrencyAvailable   int                 `json:"currency_available"`
	Affordable          bool                `json:"affordable"`
	MissingPrerequisite bool                `json:"missing_prerequisite"`
}

// AcquireResult contains the result of an acquisition. FromInventory marks
// the free path: the user already held one, so nothing was spent.
type AcquireResult struct {
	Item              domain.ItemRef `json:"item"`
	FromInventory     bool           `json:"from_inventory"`
	Spent             int            `json:"spent"`
	CurrencyAvailable int            `json:"currency_available"`
}

// SellResult contains the result of a sell operation
type SellResult struct {
	Item              domain.ItemRef `json:"item"`
	Credited          int            `json:"credited"`
	CurrencyAvailable int            `json:"currency_available"`
}

// UpgradeResult contains the result of a tier upgrade
type UpgradeResult struct {
	Item              domain.ItemRef `json:"item"`
	Spent             int            `json:"spent"`
	CurrencyAvailable int            `json:"currency_available"`
}

// ReconcileResult reports the outcome of one currency reconciliation sweep.
type ReconcileResult struct {
	FlowerCount          int `json:"flower_count"`
	CurrencyAvailable    int `json:"currency_available"`
	RemovedFromGrid      int `json:"removed_from_grid"`
	RemovedFromInventory int `json:"removed_from_inventory"`
}

// Service defines the interface for economy operations: the currency ledger,
// the inventory of owned-but-unplaced items, and the purchase/sell/upgrade
// rules that connect them.
type Service interface {
	CanAfford(ctx context.Context, userID string, category domain.ItemCategory, tier domain.Tier) (*Affordability, error)

	// AcquireItem puts one unit of (category, tier) into the user's
	// inventory. Inventory is always preferred over spending: when the user
	// already owns one, the acquisition is free and nothing changes.
	AcquireItem(ctx context.Context, userID string, category domain.ItemCategory, tier domain.Tier) (*AcquireResult, error)

	// SellItem removes one owned item, from the grid when pos is given and
	// from inventory otherwise, and credits its sell value.
	SellItem(ctx context.Context, userID string, item domain.ItemRef, pos *domain.GridPos) (*SellResult, error)

	// UpgradeItem raises the item one tier for the fixed step cost. With pos
	// the tier mutates in place on the grid; otherwise the inventory entry is
	// swapped for one at the next tier.
	UpgradeItem(ctx context.Context, userID string, item domain.ItemRef, pos *domain.GridPos) (*UpgradeResult, error)

	GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error)

	// Reconcile enforces the currency backing invariant: placed plus
	// inventoried flowers never exceed currencyAvailable. Excess flowers are
	// reclaimed most-recently-placed first, crediting nothing.
	Reconcile(ctx context.Context, userID string) (*ReconcileResult, error)
}

// SnapshotInvalidator drops a user's cached stats after a currency-affecting
// write so the next read sees the new balance.
type SnapshotInvalidator interface {
	InvalidateSnapshot(userID string)
}

type service struct {
	stats       repository.Stats
	inventory   repository.Inventory
	grid        repository.Grid
	bus         event.Bus
	invalidator SnapshotInvalidator
}

// NewService creates a new economy service
func NewService(stats repository.Stats, inventory repository.Inventory, grid repository.Grid, bus event.Bus, invalidator SnapshotInvalidator) Service {
	return &service{
		stats:       stats,
		inventory:   inventory,
		grid:        grid,
		bus:         bus,
		invalidator: invalidator,
	}
}

func (s *service) CanAfford(ctx context.Context, userID string, category domain.ItemCategory, tier domain.Tier) (*Affordability, error) {
	if err := validatePurchase(userID, category, tier); err != nil {
		return nil, err
	}

	result := &Affordability{
		Category: category,
		Tier:     tier,
		Cost:     domain.AcquisitionCost(category, tier),
	}

	missing, err := s.missingPrerequisite(ctx, userID, category, tier)
	if err != nil {
		return nil, err
	}
	result.MissingPrerequisite = missing

	stats, err := s.stats.GetGardenStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get garden stats: %w", err)
	}
	result.CurrencyAvailable = stats.CurrencyAvailable
	result.Affordable = !missing && stats.CurrencyAvailable >= result.Cost

	return result, nil
}

func (s *service) GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: missing user id", domain.ErrInvalidInput)
	}
	entries, err := s.inventory.GetInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	return entries, nil
}

func validatePurchase(userID string, category domain.ItemCategory, tier domain.Tier) error {
	if userID == "" {
		return fmt.Errorf("%w: missing user id", domain.ErrInvalidInput)
	}
	if !category.Purchasable() {
		return fmt.Errorf("%w: category %q is not purchasable", domain.ErrInvalidInput, category)
	}
	if !tier.Valid() {
		return fmt.Errorf("%w: unknown tier %q", domain.ErrInvalidInput, tier)
	}
	return nil
}

// missingPrerequisite reports whether the tier gate is unmet: any tier above
// basic requires one owned unit (inventory or grid) of the tier below it.
// The flower currency item is exempt.
func (s *service) missingPrerequisite(ctx context.Context, userID string, category domain.ItemCategory, tier domain.Tier) (bool, error) {
	if category == domain.CategoryFlower || tier == domain.TierBasic {
		return false, nil
	}

	prereq := tier.Previous()
	owned, err := s.inventory.CountOwned(ctx, userID, category, &prereq)
	if err != nil {
		return false, fmt.Errorf("failed to count inventory: %w", err)
	}
	if owned > 0 {
		return false, nil
	}

	placed, err := s.grid.CountPlaced(ctx, userID, category, &prereq)
	if err != nil {
		return false, fmt.Errorf("failed to count placements: %w", err)
	}
	return placed == 0, nil
}

// invalidate drops the cached stats snapshot, if a cache is wired.
func (s *service) invalidate(userID string) {
	if s.invalidator != nil {
		s.invalidator.InvalidateSnapshot(userID)
	}
}

// publish sends a ledger event; publish failures are logged, never surfaced.
func (s *service) publish(ctx context.Context, evt event.Event) {
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishError, "error", err, "event_type", evt.Type)
	}
}

// reconcileAfter runs the invariant sweep that follows every
// currency-affecting mutation. Sweep failures are logged, not surfaced: the
// user's operation already succeeded.
func (s *service) reconcileAfter(ctx context.Context, userID string) {
	if _, err := s.Reconcile(ctx, userID); err != nil {
		logger.FromContext(ctx).Warn(LogMsgReconcileError, "user_id", userID, "error", err)
	}
}
