package session

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
)

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

// MockRewarder implements Rewarder for testing
type MockRewarder struct {
	mock.Mock
}

func (m *MockRewarder) OnHungerCompleted(ctx context.Context, session *domain.TimedSession) (*domain.CookieAward, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CookieAward), args.Error(1)
}

func (m *MockRewarder) OnGrassCompleted(ctx context.Context, session *domain.TimedSession) (*domain.GrassAward, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GrassAward), args.Error(1)
}
