package economy

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
)

// MockStatsRepo implements repository.Stats for testing
type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) ApplyCookie(ctx context.Context, userID string, grantedAt time.Time, streakWindow time.Duration) (*domain.CookieStats, error) {
	args := m.Called(ctx, userID, grantedAt, streakWindow)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CookieStats), args.Error(1)
}

func (m *MockStatsRepo) ApplyGrassCompletion(ctx context.Context, userID string) (*domain.GardenStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GardenStats), args.Error(1)
}

func (m *MockStatsRepo) GetCookieStats(ctx context.Context, userID string) (*domain.CookieStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CookieStats), args.Error(1)
}

func (m *MockStatsRepo) GetGardenStats(ctx context.Context, userID string) (*domain.GardenStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GardenStats), args.Error(1)
}

func (m *MockStatsRepo) DebitCurrency(ctx context.Context, userID string, amount int) (bool, error) {
	args := m.Called(ctx, userID, amount)
	return args.Bool(0), args.Error(1)
}

func (m *MockStatsRepo) CreditCurrency(ctx context.Context, userID string, amount int) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

// MockInventoryRepo implements repository.Inventory for testing
type MockInventoryRepo struct {
	mock.Mock
}

func (m *MockInventoryRepo) AddItem(ctx context.Context, userID string, item domain.ItemRef, quantity int) error {
	args := m.Called(ctx, userID, item, quantity)
	return args.Error(0)
}

func (m *MockInventoryRepo) RemoveItem(ctx context.Context, userID string, item domain.ItemRef, quantity int) (bool, error) {
	args := m.Called(ctx, userID, item, quantity)
	return args.Bool(0), args.Error(1)
}

func (m *MockInventoryRepo) GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryEntry), args.Error(1)
}

func (m *MockInventoryRepo) CountOwned(ctx context.Context, userID string, category domain.ItemCategory, tier *domain.Tier) (int, error) {
	args := m.Called(ctx, userID, category, tier)
	return args.Int(0), args.Error(1)
}

// MockGridRepo implements repository.Grid for testing
type MockGridRepo struct {
	mock.Mock
}

func (m *MockGridRepo) PlaceItem(ctx context.Context, placement *domain.GridPlacement) (bool, error) {
	args := m.Called(ctx, placement)
	return args.Bool(0), args.Error(1)
}

func (m *MockGridRepo) ReplaceItem(ctx context.Context, userID string, x, y int, expect, next domain.ItemRef, placedAt time.Time) (bool, error) {
	args := m.Called(ctx, userID, x, y, expect, next, placedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockGridRepo) RemovePlacement(ctx context.Context, userID string, x, y int) (*domain.GridPlacement, error) {
	args := m.Called(ctx, userID, x, y)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GridPlacement), args.Error(1)
}

func (m *MockGridRepo) GetPlacement(ctx context.Context, userID string, x, y int) (*domain.GridPlacement, error) {
	args := m.Called(ctx, userID, x, y)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GridPlacement), args.Error(1)
}

func (m *MockGridRepo) GetGrid(ctx context.Context, userID string) ([]domain.GridPlacement, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GridPlacement), args.Error(1)
}

func (m *MockGridRepo) CountPlaced(ctx context.Context, userID string, category domain.ItemCategory, tier *domain.Tier) (int, error) {
	args := m.Called(ctx, userID, category, tier)
	return args.Int(0), args.Error(1)
}

func (m *MockGridRepo) UpdateTier(ctx context.Context, userID string, x, y int, from, to domain.Tier) (bool, error) {
	args := m.Called(ctx, userID, x, y, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockGridRepo) RemoveNewest(ctx context.Context, userID string, category domain.ItemCategory) (*domain.GridPlacement, error) {
	args := m.Called(ctx, userID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GridPlacement), args.Error(1)
}

// MockInvalidator implements SnapshotInvalidator for testing
type MockInvalidator struct {
	mock.Mock
}

func (m *MockInvalidator) InvalidateSnapshot(userID string) {
	m.Called(userID)
}
