package garden

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hollyoak/GrazeGarden_Go/internal/clock"
	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
	"github.com/hollyoak/GrazeGarden_Go/internal/event"
)

var testStart = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

const testUser = "user-1"

func newTestService(t *testing.T) (Service, *MockGridRepo, *MockInventoryRepo, *clock.SimulatedClock) {
	t.Helper()
	grid := &MockGridRepo{}
	inv := &MockInventoryRepo{}
	clk := clock.NewSimulatedClock(testStart)
	svc := NewService(grid, inv, event.NewMemoryBus(), clk)
	return svc, grid, inv, clk
}

func sproutRef() domain.ItemRef {
	return domain.ItemRef{Category: domain.CategorySprout, ItemType: "clover", Tier: domain.TierBasic}
}

func ornamentRef() domain.ItemRef {
	return domain.ItemRef{Category: domain.CategoryOrnament, ItemType: "gnome", Tier: domain.TierRare}
}

func placementOf(item domain.ItemRef, x, y int) *domain.GridPlacement {
	return &domain.GridPlacement{
		UserID: testUser, X: x, Y: y,
		Category: item.Category, ItemType: item.ItemType, Tier: item.Tier,
		PlacedAt: testStart.Add(-time.Hour),
	}
}

// =============================================================================
// PlaceItem Tests
// =============================================================================

// CASE 1: BEST CASE - Place onto an empty cell
func TestPlaceItem_EmptyCell(t *testing.T) {
	// ARRANGE
	svc, grid, inv, _ := newTestService(t)
	ctx := context.Background()
	item := sproutRef()

	inv.On("RemoveItem", ctx, testUser, item, 1).Return(true, nil)
	grid.On("GetPlacement", ctx, testUser, 1, 2).Return(nil, nil)
	grid.On("PlaceItem", ctx, mock.MatchedBy(func(p *domain.GridPlacement) bool {
		return p.X == 1 && p.Y == 2 && p.ItemType == "clover" && p.PlacedAt.Equal(testStart)
	})).Return(true, nil)

	// ACT
	result, err := svc.PlaceItem(ctx, testUser, 1, 2, item, false)

	// ASSERT
	require.NoError(t, err)
	assert.Nil(t, result.Displaced)
	assert.Equal(t, 1, result.Placement.X)
	assert.Equal(t, 2, result.Placement.Y)
	assert.Equal(t, testStart, result.Placement.PlacedAt)
	grid.AssertExpectations(t)
}

// CASE 2: Confirmed replacement displaces the occupant back to inventory
func TestPlaceItem_Replace(t *testing.T) {
	// ARRANGE
	svc, grid, inv, _ := newTestService(t)
	ctx := context.Background()
	item := sproutRef()
	occupant := placementOf(domain.ItemRef{Category: domain.CategoryShrub, ItemType: "fern", Tier: domain.TierRare}, 0, 0)

	inv.On("RemoveItem", ctx, testUser, item, 1).Return(true, nil)
	grid.On("GetPlacement", ctx, testUser, 0, 0).Return(occupant, nil)
	grid.On("ReplaceItem", ctx, testUser, 0, 0, occupant.Item(), item, testStart).Return(true, nil)
	inv.On("AddItem", ctx, testUser, occupant.Item(), 1).Return(nil)

	// ACT
	result, err := svc.PlaceItem(ctx, testUser, 0, 0, item, true)

	// ASSERT
	require.NoError(t, err)
	require.NotNil(t, result.Displaced)
	assert.Equal(t, "fern", result.Displaced.ItemType)
	inv.AssertCalled(t, "AddItem", ctx, testUser, occupant.Item(), 1)
}

// CASE 3: Occupied cell without confirmation; the withdrawn unit goes back
func TestPlaceItem_OccupiedUnconfirmed(t *testing.T) {
	svc, grid, inv, _ := newTestService(t)
	ctx := context.Background()
	item := sproutRef()
	occupant := placementOf(ornamentRef(), 3, 3)

	inv.On("RemoveItem", ctx, testUser, item, 1).Return(true, nil)
	grid.On("GetPlacement", ctx, testUser, 3, 3).Return(occupant, nil)
	inv.On("AddItem", ctx, testUser, item, 1).Return(nil)

	_, err := svc.PlaceItem(ctx, testUser, 3, 3, item, false)

	assert.ErrorIs(t, err, domain.ErrCellTaken)
	inv.AssertCalled(t, "AddItem", ctx, testUser, item, 1)
	grid.AssertNotCalled(t, "ReplaceItem", mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// CASE 4: Plant cannot replace an ornament even when confirmed
func TestPlaceItem_IncompatibleKinds(t *testing.T) {
	svc, grid, inv, _ := newTestService(t)
	ctx := context.Background()
	item := sproutRef()
	occupant := placementOf(ornamentRef(), 3, 3)

	inv.On("RemoveItem", ctx, testUser, item, 1).Return(true, nil)
	grid.On("GetPlacement", ctx, testUser, 3, 3).Return(occupant, nil)
	inv.On("AddItem", ctx, testUser, item, 1).Return(nil)

	_, err := svc.PlaceItem(ctx, testUser, 3, 3, item, true)

	assert.ErrorIs(t, err, domain.ErrIncompatibleReplacement)
	inv.AssertCalled(t, "AddItem", ctx, testUser, item, 1)
}

// Ornament onto ornament is a legal confirmed replacement
func TestPlaceItem_OrnamentReplacesOrnament(t *testing.T) {
	svc, grid, inv, _ := newTestService(t)
	ctx := context.Background()
	item := domain.ItemRef{Category: domain.CategoryOrnament, ItemType: "lantern", Tier: domain.TierBasic}
	occupant := placementOf(ornamentRef(), 2, 2)

	inv.On("RemoveItem", ctx, testUser, item, 1).Return(true, nil)
	grid.On("GetPlacement", ctx, testUser, 2, 2).Return(occupant, nil)
	grid.On("ReplaceItem", ctx, testUser, 2, 2, occupant.Item(), item, testStart).Return(true, nil)
	inv.On("AddItem", ctx, testUser, occupant.Item(), 1).Return(nil)

	result, err := svc.PlaceItem(ctx, testUser, 2, 2, item, true)

	require.NoError(t, err)
	assert.Equal(t, "gnome", result.Displaced.ItemType)
}

// CASE 5a: WORST CASE - Item not in inventory
func TestPlaceItem_NotOwned(t *testing.T) {
	svc, grid, inv, _ := newTestService(t)
	ctx := context.Background()
	item := sproutRef()

	inv.On("RemoveItem", ctx, testUser, item, 1).Return(false, nil)

	_, err := svc.PlaceItem(ctx, testUser, 0, 0, item, false)

	assert.ErrorIs(t, err, domain.ErrItemNotOwned)
	grid.AssertNotCalled(t, "GetPlacement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// CASE 5b: Lost the empty-cell race; unit returns to inventory
func TestPlaceItem_LostRace(t *testing.T) {
	svc, grid, inv, _ := newTestService(t)
	ctx := context.Background()
	item := sproutRef()

	inv.On("RemoveItem", ctx, testUser, item, 1).Return(true, nil)
	grid.On("GetPlacement", ctx, testUser, 4, 4).Return(nil, nil)
	grid.On("PlaceItem", ctx, mock.Anything).Return(false, nil)
	inv.On("AddItem", ctx, testUser, item, 1).Return(nil)

	_, err := svc.PlaceItem(ctx, testUser, 4, 4, item, false)

	assert.ErrorIs(t, err, domain.ErrCellTaken)
	inv.AssertCalled(t, "AddItem", ctx, testUser, item, 1)
}

// Out-of-bounds positions are rejected before any write
func TestPlaceItem_OutOfBounds(t *testing.T) {
	svc, _, inv, _ := newTestService(t)

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x past edge", domain.GridSize, 0},
		{"y past edge", 0, domain.GridSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.PlaceItem(context.Background(), testUser, tt.x, tt.y, sproutRef(), false)
			assert.ErrorIs(t, err, domain.ErrOutOfBounds)
		})
	}
	inv.AssertNotCalled(t, "RemoveItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// =============================================================================
// RemoveItem Tests
// =============================================================================

// CASE 1: BEST CASE - Removal returns the item to inventory
func TestRemoveItem_Success(t *testing.T) {
	// ARRANGE
	svc, grid, inv, _ := newTestService(t)
	ctx := context.Background()
	placed := placementOf(sproutRef(), 1, 1)

	grid.On("RemovePlacement", ctx, testUser, 1, 1).Return(placed, nil)
	inv.On("AddItem", ctx, testUser, placed.Item(), 1).Return(nil)

	// ACT
	removed, err := svc.RemoveItem(ctx, testUser, 1, 1)

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, "clover", removed.ItemType)
	inv.AssertCalled(t, "AddItem", ctx, testUser, placed.Item(), 1)
}

// CASE 2: Empty cell
func TestRemoveItem_EmptyCell(t *testing.T) {
	svc, grid, inv, _ := newTestService(t)
	ctx := context.Background()

	grid.On("RemovePlacement", ctx, testUser, 2, 2).Return(nil, nil)

	_, err := svc.RemoveItem(ctx, testUser, 2, 2)

	assert.ErrorIs(t, err, domain.ErrItemNotOwned)
	inv.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// CASE 3: Out of bounds
func TestRemoveItem_OutOfBounds(t *testing.T) {
	svc, grid, _, _ := newTestService(t)

	_, err := svc.RemoveItem(context.Background(), testUser, 0, domain.GridSize)

	assert.ErrorIs(t, err, domain.ErrOutOfBounds)
	grid.AssertNotCalled(t, "RemovePlacement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// =============================================================================
// GetGrid Tests
// =============================================================================

func TestGetGrid_Success(t *testing.T) {
	svc, grid, _, _ := newTestService(t)
	ctx := context.Background()
	placements := []domain.GridPlacement{*placementOf(sproutRef(), 0, 0), *placementOf(ornamentRef(), 4, 4)}

	grid.On("GetGrid", ctx, testUser).Return(placements, nil)

	got, err := svc.GetGrid(ctx, testUser)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestGetGrid_MissingUser(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.GetGrid(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
