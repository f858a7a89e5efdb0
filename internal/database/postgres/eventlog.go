package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EventLogRepository implements the audit log repository for PostgreSQL
type EventLogRepository struct {
	db *pgxpool.Pool
}

// NewEventLogRepository creates a new EventLogRepository
func NewEventLogRepository(db *pgxpool.Pool) *EventLogRepository {
	return &EventLogRepository{db: db}
}

// LogEvent appends one audit row with JSONB payload and metadata
func (r *EventLogRepository) LogEvent(ctx context.Context, eventType string, userID *string, payload interface{}, metadata interface{}) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal event metadata: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO event_log (event_type, user_id, payload, metadata)
		 VALUES ($1, $2, $3, $4)`,
		eventType, userID, payloadJSON, metadataJSON)
	if err != nil {
		return fmt.Errorf("failed to log event: %w", err)
	}
	return nil
}

// CleanupOldEvents deletes audit rows older than the retention window
func (r *EventLogRepository) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM event_log
		 WHERE created_at < NOW() - make_interval(days => $1)`,
		retentionDays)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up old events: %w", err)
	}
	return tag.RowsAffected(), nil
}
