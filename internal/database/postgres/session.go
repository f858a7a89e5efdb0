package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
)

// SessionRepository implements the session repository for PostgreSQL
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

const sessionColumns = `session_id, user_id, kind, start_time, end_time, completed, planned_duration_seconds, reward_type`

func scanSession(row pgx.Row) (*domain.TimedSession, error) {
	var s domain.TimedSession
	var endTime *time.Time
	var rewardType *string
	if err := row.Scan(&s.ID, &s.UserID, &s.Kind, &s.StartTime, &endTime, &s.Completed, &s.PlannedDurationSeconds, &rewardType); err != nil {
		return nil, err
	}
	s.EndTime = endTime
	if rewardType != nil {
		rt := domain.GrassRewardType(*rewardType)
		s.RewardType = &rt
	}
	return &s, nil
}

// CreateSession inserts a new open session. The partial unique index on open
// sessions maps a second concurrent start to ErrSessionAlreadyRunning.
func (r *SessionRepository) CreateSession(ctx context.Context, session *domain.TimedSession) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO timed_sessions (session_id, user_id, kind, start_time, end_time, completed, planned_duration_seconds)
		 VALUES ($1, $2, $3, $4, NULL, FALSE, $5)`,
		session.ID, session.UserID, session.Kind, session.StartTime, session.PlannedDurationSeconds,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return domain.ErrSessionAlreadyRunning
		}
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetSession retrieves a session by ID, or nil when it does not exist
func (r *SessionRepository) GetSession(ctx context.Context, sessionID string) (*domain.TimedSession, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM timed_sessions WHERE session_id = $1`, sessionID)
	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// GetActiveSession retrieves the open session of the given kind, or nil
func (r *SessionRepository) GetActiveSession(ctx context.Context, userID string, kind domain.SessionKind) (*domain.TimedSession, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM timed_sessions
		 WHERE user_id = $1 AND kind = $2 AND end_time IS NULL`,
		userID, kind)
	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active session: %w", err)
	}
	return s, nil
}

// MarkCompleted flips completed false->true for an open session. The WHERE
// guard makes the flip the single authorizing event: exactly one caller wins
// and the rest read back the already-terminal row.
func (r *SessionRepository) MarkCompleted(ctx context.Context, sessionID string, endTime time.Time) (*domain.TimedSession, bool, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE timed_sessions
		 SET end_time = $2, completed = TRUE
		 WHERE session_id = $1 AND end_time IS NULL
		 RETURNING `+sessionColumns,
		sessionID, endTime)
	s, err := scanSession(row)
	if err == nil {
		return s, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to complete session: %w", err)
	}

	// Lost the race or retried: return whatever terminal state exists.
	existing, err := r.GetSession(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// MarkCancelled ends an open session without completing it
func (r *SessionRepository) MarkCancelled(ctx context.Context, sessionID string, endTime time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE timed_sessions
		 SET end_time = $2, completed = FALSE
		 WHERE session_id = $1 AND end_time IS NULL`,
		sessionID, endTime)
	if err != nil {
		return false, fmt.Errorf("failed to cancel session: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// SetRewardType records which reward a completed grass session produced
func (r *SessionRepository) SetRewardType(ctx context.Context, sessionID string, rewardType domain.GrassRewardType) error {
	_, err := r.db.Exec(ctx,
		`UPDATE timed_sessions SET reward_type = $2 WHERE session_id = $1`,
		sessionID, rewardType)
	if err != nil {
		return fmt.Errorf("failed to set reward type: %w", err)
	}
	return nil
}
