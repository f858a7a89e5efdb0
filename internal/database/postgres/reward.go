package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
)

// RewardRepository implements the reward event log for PostgreSQL
type RewardRepository struct {
	db *pgxpool.Pool
}

// NewRewardRepository creates a new RewardRepository
func NewRewardRepository(db *pgxpool.Pool) *RewardRepository {
	return &RewardRepository{db: db}
}

// InsertRewardEvent appends one event; the unique source-session index makes
// retries report false instead of duplicating the grant.
func (r *RewardRepository) InsertRewardEvent(ctx context.Context, event *domain.RewardEvent) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`INSERT INTO reward_events (event_id, user_id, source_session_id, kind, cookie_rarity, streak_count_at_event, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (source_session_id) WHERE source_session_id IS NOT NULL DO NOTHING`,
		event.ID, event.UserID, event.SourceSessionID, event.Kind, event.CookieRarity, event.StreakCountAtEvent, event.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("failed to insert reward event: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListRewardEvents returns the newest events for a user, newest first
func (r *RewardRepository) ListRewardEvents(ctx context.Context, userID string, limit int) ([]domain.RewardEvent, error) {
	rows, err := r.db.Query(ctx,
		`SELECT event_id, user_id, source_session_id, kind, cookie_rarity, streak_count_at_event, created_at
		 FROM reward_events
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reward events: %w", err)
	}
	defer rows.Close()

	var events []domain.RewardEvent
	for rows.Next() {
		var e domain.RewardEvent
		var rarity *string
		if err := rows.Scan(&e.ID, &e.UserID, &e.SourceSessionID, &e.Kind, &rarity, &e.StreakCountAtEvent, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reward event: %w", err)
		}
		if rarity != nil {
			cr := domain.CookieRarity(*rarity)
			e.CookieRarity = &cr
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
