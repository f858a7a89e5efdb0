package repository

import (
	"context"
	"time"

	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
)

// Session defines the interface for timed-session persistence.
//
// MarkCompleted and MarkCancelled are conditional single-row updates: they
// only apply while the session is still open, and report whether this caller
// performed the transition. That flip is the sole authorization for a reward
// grant, so concurrent completions converge on one winner.
type Session interface {
	CreateSession(ctx context.Context, session *domain.TimedSession) error
	GetSession(ctx context.Context, sessionID string) (*domain.TimedSession, error)
	GetActiveSession(ctx context.Context, userID string, kind domain.SessionKind) (*domain.TimedSession, error)
	MarkCompleted(ctx context.Context, sessionID string, endTime time.Time) (*domain.TimedSession, bool, error)
	MarkCancelled(ctx context.Context, sessionID string, endTime time.Time) (bool, error)
	SetRewardType(ctx context.Context, sessionID string, rewardType domain.GrassRewardType) error
}
