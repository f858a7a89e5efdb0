package economy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
	"github.com/hollyoak/GrazeGarden_Go/internal/event"
)

const testUser = "user-1"

func newTestService(t *testing.T) (Service, *MockStatsRepo, *MockInventoryRepo, *MockGridRepo) {
	t.Helper()
	stats := &MockStatsRepo{}
	inv := &MockInventoryRepo{}
	grid := &MockGridRepo{}
	svc := NewService(stats, inv, grid, event.NewMemoryBus(), nil)
	return svc, stats, inv, grid
}

func tierPtr(tier domain.Tier) *domain.Tier {
	return &tier
}

// expectCleanReconcile satisfies the post-mutation sweep for a user whose
// flower count is already within the balance.
func expectCleanReconcile(stats *MockStatsRepo, inv *MockInventoryRepo, grid *MockGridRepo, available int) {
	stats.On("GetGardenStats", mock.Anything, testUser).
		Return(&domain.GardenStats{UserID: testUser, CurrencyAvailable: available}, nil)
	grid.On("CountPlaced", mock.Anything, testUser, domain.CategoryFlower, (*domain.Tier)(nil)).Return(0, nil)
	inv.On("CountOwned", mock.Anything, testUser, domain.CategoryFlower, (*domain.Tier)(nil)).Return(0, nil)
}

// =============================================================================
// CanAfford Tests
// =============================================================================

// CASE 1: BEST CASE - Basic purchase with enough currency
func TestCanAfford_Basic(t *testing.T) {
	// ARRANGE
	svc, stats, _, _ := newTestService(t)
	ctx := context.Background()

	stats.On("GetGardenStats", ctx, testUser).
		Return(&domain.GardenStats{UserID: testUser, CurrencyAvailable: 12}, nil)

	// ACT
	result, err := svc.CanAfford(ctx, testUser, domain.CategoryShrub, domain.TierBasic)

	// ASSERT
	require.NoError(t, err)
	assert.True(t, result.Affordable)
	assert.Equal(t, 10, result.Cost)
	assert.Equal(t, 12, result.CurrencyAvailable)
	assert.False(t, result.MissingPrerequisite)
}

// CASE 2: WORST CASE - Balance does not cover the price
func TestCanAfford_InsufficientFunds(t *testing.T) {
	svc, stats, inv, grid := newTestService(t)
	ctx := context.Background()

	// Rare sprout = 5 base + 5 step; a basic sprout on the grid satisfies the gate.
	inv.On("CountOwned", ctx, testUser, domain.CategorySprout, tierPtr(domain.TierBasic)).Return(0, nil)
	grid.On("CountPlaced", ctx, testUser, domain.CategorySprout, tierPtr(domain.TierBasic)).Return(1, nil)
	stats.On("GetGardenStats", ctx, testUser).
		Return(&domain.GardenStats{UserID: testUser, CurrencyAvailable: 9}, nil)

	result, err := svc.CanAfford(ctx, testUser, domain.CategorySprout, domain.TierRare)

	require.NoError(t, err)
	assert.False(t, result.Affordable)
	assert.Equal(t, 10, result.Cost)
	assert.False(t, result.MissingPrerequisite)
}

// CASE 3: Prerequisite tier not owned anywhere
func TestCanAfford_MissingPrerequisite(t *testing.T) {
	svc, stats, inv, grid := newTestService(t)
	ctx := context.Background()

	inv.On("CountOwned", ctx, testUser, domain.CategoryTree, tierPtr(domain.TierRare)).Return(0, nil)
	grid.On("CountPlaced", ctx, testUser, domain.CategoryTree, tierPtr(domain.TierRare)).Return(0, nil)
	stats.On("GetGardenStats", ctx, testUser).
		Return(&domain.GardenStats{UserID: testUser, CurrencyAvailable: 100}, nil)

	result, err := svc.CanAfford(ctx, testUser, domain.CategoryTree, domain.TierEpic)

	require.NoError(t, err)
	assert.True(t, result.MissingPrerequisite)
	assert.False(t, result.Affordable)
}

// CASE 4: Flower is exempt from the prerequisite gate
func TestCanAfford_FlowerExempt(t *testing.T) {
	svc, stats, inv, grid := newTestService(t)
	ctx := context.Background()

	stats.On("GetGardenStats", ctx, testUser).
		Return(&domain.GardenStats{UserID: testUser, CurrencyAvailable: 5}, nil)

	result, err := svc.CanAfford(ctx, testUser, domain.CategoryFlower, domain.TierRare)

	require.NoError(t, err)
	assert.True(t, result.Affordable)
	assert.Equal(t, 5, result.Cost)
	inv.AssertNotCalled(t, "CountOwned", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	grid.AssertNotCalled(t, "CountPlaced", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// CASE 5: INVALID INPUT - Ornaments are never purchasable
func TestCanAfford_OrnamentRejected(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.CanAfford(context.Background(), testUser, domain.CategoryOrnament, domain.TierBasic)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// =============================================================================
// AcquireItem Tests
// =============================================================================

// CASE 1: BEST CASE - Purchase materializes the item, then debits
func TestAcquireItem_Purchase(t *testing.T) {
	// ARRANGE
	svc, stats, inv, grid := newTestService(t)
	ctx := context.Background()
	item := domain.ItemRef{Category: domain.CategorySprout, ItemType: "clover", Tier: domain.TierBasic}

	inv.On("GetInventory", ctx, testUser).Return([]domain.InventoryEntry{}, nil)
	inv.On("AddItem", ctx, testUser, item, 1).Return(nil)
	stats.On("DebitCurrency", ctx, testUser, 5).Return(true, nil)
	expectCleanReconcile(stats, inv, grid, 3)

	// ACT
	result, err := svc.AcquireItem(ctx, testUser, domain.CategorySprout, domain.TierBasic)

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, item, result.Item)
	assert.False(t, result.FromInventory)
	assert.Equal(t, 5, result.Spent)
	assert.Equal(t, 3, result.CurrencyAvailable)
	inv.AssertExpectations(t)
	stats.AssertExpectations(t)
}

// CASE 2: Inventory is preferred over spending
func TestAcquireItem_FromInventory(t *testing.T) {
	// ARRANGE
	svc, stats, inv, _ := newTestService(t)
	ctx := context.Background()

	inv.On("GetInventory", ctx, testUser).Return([]domain.InventoryEntry{
		{UserID: testUser, Category: domain.CategorySprout, ItemType: "seedling", Tier: domain.TierBasic, Quantity: 2},
	}, nil)
	stats.On("GetGardenStats", ctx, testUser).
		Return(&domain.GardenStats{UserID: testUser, CurrencyAvailable: 7}, nil)

	// ACT
	result, err := svc.AcquireItem(ctx, testUser, domain.CategorySprout, domain.TierBasic)

	// ASSERT
	require.NoError(t, err)
	assert.True(t, result.FromInventory)
	assert.Equal(t, 0, result.Spent)
	assert.Equal(t, "seedling", result.Item.ItemType)
	stats.AssertNotCalled(t, "DebitCurrency", mock.Anything, mock.Anything, mock.Anything)
	inv.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// CASE 3: WORST CASE - Refused debit compensates the materialization
func TestAcquireItem_InsufficientFunds(t *testing.T) {
	// ARRANGE
	svc, stats, inv, _ := newTestService(t)
	ctx := context.Background()
	item := domain.ItemRef{Category: domain.CategoryBlossom, ItemType: "cherry", Tier: domain.TierBasic}

	inv.On("GetInventory", ctx, testUser).Return([]domain.InventoryEntry{}, nil)
	inv.On("AddItem", ctx, testUser, item, 1).Return(nil)
	stats.On("DebitCurrency", ctx, testUser, 20).Return(false, nil)
	inv.On("RemoveItem", ctx, testUser, item, 1).Return(true, nil)

	// ACT
	result, err := svc.AcquireItem(ctx, testUser, domain.CategoryBlossom, domain.TierBasic)

	// ASSERT
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Nil(t, result)
	inv.AssertCalled(t, "RemoveItem", ctx, testUser, item, 1)
}

// CASE 4: Prerequisite tier not owned
func TestAcquireItem_MissingPrerequisite(t *testing.T) {
	svc, _, inv, grid := newTestService(t)
	ctx := context.Background()

	inv.On("GetInventory", ctx, testUser).Return([]domain.InventoryEntry{}, nil)
	inv.On("CountOwned", ctx, testUser, domain.CategoryShrub, tierPtr(domain.TierBasic)).Return(0, nil)
	grid.On("CountPlaced", ctx, testUser, domain.CategoryShrub, tierPtr(domain.TierBasic)).Return(0, nil)

	_, err := svc.AcquireItem(ctx, testUser, domain.CategoryShrub, domain.TierRare)

	assert.ErrorIs(t, err, domain.ErrMissingPrerequisite)
	inv.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// CASE 5: Basic flower costs nothing, so no debit happens
func TestAcquireItem_FreeFlower(t *testing.T) {
	svc, stats, inv, grid := newTestService(t)
	ctx := context.Background()
	item := domain.ItemRef{Category: domain.CategoryFlower, ItemType: "daisy", Tier: domain.TierBasic}

	inv.On("GetInventory", ctx, testUser).Return([]domain.InventoryEntry{}, nil)
	inv.On("AddItem", ctx, testUser, item, 1).Return(nil)
	expectCleanReconcile(stats, inv, grid, 4)

	result, err := svc.AcquireItem(ctx, testUser, domain.CategoryFlower, domain.TierBasic)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Spent)
	stats.AssertNotCalled(t, "DebitCurrency", mock.Anything, mock.Anything, mock.Anything)
}

// Snapshot cache is dropped after a successful purchase
func TestAcquireItem_InvalidatesSnapshot(t *testing.T) {
	stats := &MockStatsRepo{}
	inv := &MockInventoryRepo{}
	grid := &MockGridRepo{}
	invalidator := &MockInvalidator{}
	svc := NewService(stats, inv, grid, event.NewMemoryBus(), invalidator)
	ctx := context.Background()
	item := domain.ItemRef{Category: domain.CategorySprout, ItemType: "clover", Tier: domain.TierBasic}

	inv.On("GetInventory", ctx, testUser).Return([]domain.InventoryEntry{}, nil)
	inv.On("AddItem", ctx, testUser, item, 1).Return(nil)
	stats.On("DebitCurrency", ctx, testUser, 5).Return(true, nil)
	invalidator.On("InvalidateSnapshot", testUser).Return()
	expectCleanReconcile(stats, inv, grid, 0)

	_, err := svc.AcquireItem(ctx, testUser, domain.CategorySprout, domain.TierBasic)

	require.NoError(t, err)
	invalidator.AssertCalled(t, "InvalidateSnapshot", testUser)
}

// Repo failure on the read path surfaces wrapped
func TestAcquireItem_InventoryError(t *testing.T) {
	svc, _, inv, _ := newTestService(t)
	ctx := context.Background()

	inv.On("GetInventory", ctx, testUser).Return(nil, errors.New("connection reset"))

	_, err := svc.AcquireItem(ctx, testUser, domain.CategorySprout, domain.TierBasic)
	assert.ErrorContains(t, err, "failed to get inventory")
}
