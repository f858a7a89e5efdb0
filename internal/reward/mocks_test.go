package reward

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
)

// MockRewardRepo implements repository.Reward for testing
type MockRewardRepo struct {
	mock.Mock
}

func (m *MockRewardRepo) InsertRewardEvent(ctx context.Context, event *domain.RewardEvent) (bool, error) {
	args := m.Called(ctx, event)
	return args.Bool(0), args.Error(1)
}

func (m *MockRewardRepo) ListRewardEvents(ctx context.Context, userID string, limit int) ([]domain.RewardEvent, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RewardEvent), args.Error(1)
}

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

// MockSessionRepo implements repository.Session for testing
type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) CreateSession(ctx context.Context, session *domain.TimedSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepo) GetSession(ctx context.Context, sessionID string) (*domain.TimedSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimedSession), args.Error(1)
}

func (m *MockSessionRepo) GetActiveSession(ctx context.Context, userID string, kind domain.SessionKind) (*domain.TimedSession, error) {
	args := m.Called(ctx, userID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimedSession), args.Error(1)
}

func (m *MockSessionRepo) MarkCompleted(ctx context.Context, sessionID string, endTime time.Time) (*domain.TimedSession, bool, error) {
	args := m.Called(ctx, sessionID, endTime)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.TimedSession), args.Bool(1), args.Error(2)
}

func (m *MockSessionRepo) MarkCancelled(ctx context.Context, sessionID string, endTime time.Time) (bool, error) {
	args := m.Called(ctx, sessionID, endTime)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionRepo) SetRewardType(ctx context.Context, sessionID string, rewardType domain.GrassRewardType) error {
	args := m.Called(ctx, sessionID, rewardType)
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

// seqRnd returns a rnd func yielding the given values in order, then repeating
// the last one.
func seqRnd(values ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return v
	}
}
