package eventlog

import (
	"context"

	"github.com/hollyoak/GrazeGarden_Go/internal/event"
	"github.com/hollyoak/GrazeGarden_Go/internal/logger"
)

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger to listen to all events
	Subscribe(bus event.Bus) error

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Subscribe registers event handlers for all event types
func (s *service) Subscribe(bus event.Bus) error {
	eventTypes := []event.Type{
		event.SessionStarted,
		event.SessionCompleted,
		event.SessionCancelled,
		event.RewardCookieGranted,
		event.RewardCurrencyGranted,
		event.GardenItemAcquired,
		event.GardenItemPlaced,
		event.GardenItemRemoved,
		event.GardenItemUpgraded,
		event.GardenItemSold,
		event.GardenReconciled,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}

	return nil
}

// handleEvent processes and logs events to the database
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	userID := extractUserID(evt.Payload)

	if err := s.repo.LogEvent(ctx, string(evt.Type), userID, evt.Payload, evt.Metadata); err != nil {
		log.Error(LogMsgFailedToLogEvent, "error", err, "type", evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, "type", evt.Type, "user_id", userID)
	return nil
}

// extractUserID pulls the user scope out of the typed payloads
func extractUserID(payload interface{}) *string {
	switch p := payload.(type) {
	case event.SessionPayloadV1:
		return &p.UserID
	case event.CookieGrantedPayloadV1:
		return &p.UserID
	case event.CurrencyGrantedPayloadV1:
		return &p.UserID
	case event.GardenItemPayloadV1:
		return &p.UserID
	case event.ReconciledPayloadV1:
		return &p.UserID
	case map[string]interface{}:
		if uid, ok := p[PayloadKeyUserID].(string); ok {
			return &uid
		}
	}
	return nil
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}
