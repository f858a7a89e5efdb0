package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
	"github.com/hollyoak/GrazeGarden_Go/internal/economy"
	"github.com/hollyoak/GrazeGarden_Go/internal/garden"
)

// MockSessionService implements session.Service for testing
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Start(ctx context.Context, userID string, kind domain.SessionKind, plannedDurationSeconds int) (*domain.TimedSession, error) {
	args := m.Called(ctx, userID, kind, plannedDurationSeconds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimedSession), args.Error(1)
}

func (m *MockSessionService) GetActive(ctx context.Context, userID string, kind domain.SessionKind) (*domain.TimedSession, error) {
	args := m.Called(ctx, userID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimedSession), args.Error(1)
}

func (m *MockSessionService) Complete(ctx context.Context, sessionID string) (*domain.CompletionResult, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompletionResult), args.Error(1)
}

func (m *MockSessionService) Cancel(ctx context.Context, sessionID string) (*domain.TimedSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimedSession), args.Error(1)
}

// MockGardenService implements garden.Service for testing
type MockGardenService struct {
	mock.Mock
}

func (m *MockGardenService) PlaceItem(ctx context.Context, userID string, x, y int, item domain.ItemRef, confirmReplace bool) (*garden.PlaceResult, error) {
	args := m.Called(ctx, userID, x, y, item, confirmReplace)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*garden.PlaceResult), args.Error(1)
}

func (m *MockGardenService) RemoveItem(ctx context.Context, userID string, x, y int) (*domain.GridPlacement, error) {
	args := m.Called(ctx, userID, x, y)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GridPlacement), args.Error(1)
}

func (m *MockGardenService) GetGrid(ctx context.Context, userID string) ([]domain.GridPlacement, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GridPlacement), args.Error(1)
}

// MockEconomyService implements economy.Service for testing
type MockEconomyService struct {
	mock.Mock
}

func (m *MockEconomyService) CanAfford(ctx context.Context, userID string, category domain.ItemCategory, tier domain.Tier) (*economy.Affordability, error) {
	args := m.Called(ctx, userID, category, tier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.Affordability), args.Error(1)
}

func (m *MockEconomyService) AcquireItem(ctx context.Context, userID string, category domain.ItemCategory, tier domain.Tier) (*economy.AcquireResult, error) {
	args := m.Called(ctx, userID, category, tier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.AcquireResult), args.Error(1)
}

func (m *MockEconomyService) SellItem(ctx context.Context, userID string, item domain.ItemRef, pos *domain.GridPos) (*economy.SellResult, error) {
	args := m.Called(ctx, userID, item, pos)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.SellResult), args.Error(1)
}

func (m *MockEconomyService) UpgradeItem(ctx context.Context, userID string, item domain.ItemRef, pos *domain.GridPos) (*economy.UpgradeResult, error) {
	args := m.Called(ctx, userID, item, pos)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.UpgradeResult), args.Error(1)
}

func (m *MockEconomyService) GetInventory(ctx context.Context, userID string) ([]domain.InventoryEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryEntry), args.Error(1)
}

func (m *MockEconomyService) Reconcile(ctx context.Context, userID string) (*economy.ReconcileResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.ReconcileResult), args.Error(1)
}

// MockRewardService implements reward.Service for testing
type MockRewardService struct {
	mock.Mock
}

func (m *MockRewardService) OnHungerCompleted(ctx context.Context, session *domain.TimedSession) (*domain.CookieAward, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CookieAward), args.Error(1)
}

func (m *MockRewardService) OnGrassCompleted(ctx context.Context, session *domain.TimedSession) (*domain.GrassAward, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GrassAward), args.Error(1)
}

func (m *MockRewardService) Achievements(ctx context.Context, userID string) ([]domain.Achievement, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Achievement), args.Error(1)
}

func (m *MockRewardService) Snapshot(ctx context.Context, userID string) (*domain.StatsSnapshot, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatsSnapshot), args.Error(1)
}

func (m *MockRewardService) InvalidateSnapshot(userID string) {
	m.Called(userID)
}

func (m *MockRewardService) History(ctx context.Context, userID string, limit int) ([]domain.RewardEvent, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RewardEvent), args.Error(1)
}

// MockPool implements database.Pool for testing
type MockPool struct {
	mock.Mock
}

func (m *MockPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPool) Close() {
	m.Called()
}
