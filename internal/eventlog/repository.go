package eventlog

import "context"

// Repository defines the interface for event logging storage
type Repository interface {
	// LogEvent stores an event in the database
	LogEvent(ctx context.Context, eventType string, userID *string, payload interface{}, metadata interface{}) error

	// CleanupOldEvents removes events older than the specified number of days
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}
