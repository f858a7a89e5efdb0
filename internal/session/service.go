package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hollyoak/GrazeGarden_Go/internal/clock"
	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
	"github.com/hollyoak/GrazeGarden_Go/internal/event"
	"github.com/hollyoak/GrazeGarden_Go/internal/logger"
	"github.com/hollyoak/GrazeGarden_Go/internal/repository"
)

// Service defines the interface for timed-session operations.
//
// A session is OPEN from Start until Complete or Cancel; both end states are
// terminal. At most one open session exists per user per kind, and expiry is
// client-driven: an abandoned session stays open until the client completes
// or cancels it on its next visit.
type Service interface {
	Start(ctx context.Context, userID string, kind domain.SessionKind, plannedDurationSeconds int) (*domain.TimedSession, error)
	GetActive(ctx context.Context, userID string, kind domain.SessionKind) (*domain.TimedSession, error)
	Complete(ctx context.Context, sessionID string) (*domain.CompletionResult, error)
	Cancel(ctx context.Context, sessionID string) (*domain.TimedSession, error)
}

// Rewarder computes and persists the reward for a session this caller just
// completed. Invoked exactly once per session, by the completion winner.
type Rewarder interface {
	OnHungerCompleted(ctx context.Context, session *domain.TimedSession) (*domain.CookieAward, error)
	OnGrassCompleted(ctx context.Context, session *domain.TimedSession) (*domain.GrassAward, error)
}

type service struct {
	repo     repository.Session
	rewarder Rewarder
	bus      event.Bus
	clk      clock.Clock
}

// NewService creates a new session service
func NewService(repo repository.Session, rewarder Rewarder, bus event.Bus, clk clock.Clock) Service {
	return &service{
		repo:     repo,
		rewarder: rewarder,
		bus:      bus,
		clk:      clk,
	}
}

func (s *service) Start(ctx context.Context, userID string, kind domain.SessionKind, plannedDurationSeconds int) (*domain.TimedSession, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, fmt.Errorf("%w: missing user id", domain.ErrInvalidInput)
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown session kind %q", domain.ErrInvalidInput, kind)
	}
	if plannedDurationSeconds <= 0 || plannedDurationSeconds > MaxPlannedDurationSeconds {
		return nil, fmt.Errorf("%w: planned duration %d out of range", domain.ErrInvalidInput, plannedDurationSeconds)
	}

	session := &domain.TimedSession{
		ID:                     uuid.NewString(),
		UserID:                 userID,
		Kind:                   kind,
		StartTime:              s.clk.Now(),
		PlannedDurationSeconds: plannedDurationSeconds,
	}

	// The open-session uniqueness constraint turns a concurrent double start
	// into ErrSessionAlreadyRunning for the loser.
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	s.publish(ctx, event.NewSessionEvent(event.SessionStarted, userID, session.ID, kind))

	log.Info(LogMsgSessionStarted, "user_id", userID, "kind", kind, "session_id", session.ID)
	return session, nil
}

func (s *service) GetActive(ctx context.Context, userID string, kind domain.SessionKind) (*domain.TimedSession, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown session kind %q", domain.ErrInvalidInput, kind)
	}
	session, err := s.repo.GetActiveSession(ctx, userID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to get active session: %w", err)
	}
	return session, nil
}

// Complete ends an open session and grants its reward. Idempotent: the
// conditional open->completed flip admits exactly one winner, and every other
// caller gets the terminal session back with AlreadyCompleted set and no new
// writes.
func (s *service) Complete(ctx context.Context, sessionID string) (*domain.CompletionResult, error) {
	log := logger.FromContext(ctx)

	session, won, err := s.repo.MarkCompleted(ctx, sessionID, s.clk.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to complete session: %w", err)
	}
	if session == nil {
		return nil, domain.ErrSessionNotFound
	}

	if !won {
		if session.Cancelled() {
			return nil, domain.ErrSessionFinished
		}
		log.Info(LogMsgCompletionReplay, "session_id", sessionID)
		return &domain.CompletionResult{Session: session, AlreadyCompleted: true}, nil
	}

	result := &domain.CompletionResult{Session: session}
	switch session.Kind {
	case domain.SessionHunger:
		result.Cookie, err = s.rewarder.OnHungerCompleted(ctx, session)
	case domain.SessionGrass:
		result.Grass, err = s.rewarder.OnGrassCompleted(ctx, session)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to grant reward: %w", err)
	}

	s.publish(ctx, event.NewSessionEvent(event.SessionCompleted, session.UserID, session.ID, session.Kind))

	log.Info(LogMsgSessionCompleted,
		"user_id", session.UserID,
		"kind", session.Kind,
		"session_id", session.ID,
		"duration_seconds", session.DurationSeconds())
	return result, nil
}

func (s *service) Cancel(ctx context.Context, sessionID string) (*domain.TimedSession, error) {
	log := logger.FromContext(ctx)

	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, domain.ErrSessionNotFound
	}

	endTime := s.clk.Now()
	ok, err := s.repo.MarkCancelled(ctx, sessionID, endTime)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel session: %w", err)
	}
	if !ok {
		// Lost to a concurrent complete or cancel; terminal either way.
		return nil, domain.ErrSessionFinished
	}

	session.EndTime = &endTime
	session.Completed = false

	s.publish(ctx, event.NewSessionEvent(event.SessionCancelled, session.UserID, session.ID, session.Kind))

	log.Info(LogMsgSessionCancelled, "user_id", session.UserID, "kind", session.Kind, "session_id", session.ID)
	return session, nil
}

// publish sends a lifecycle event; publish failures are logged, never surfaced.
func (s *service) publish(ctx context.Context, evt event.Event) {
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishError, "error", err, "event_type", evt.Type)
	}
}
