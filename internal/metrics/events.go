package metrics

import (
	"context"

	"github.com/hollyoak/GrazeGarden_Go/internal/event"
	"github.com/hollyoak/GrazeGarden_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
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
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch p := evt.Payload.(type) {
	case event.SessionPayloadV1:
		switch evt.Type {
		case event.SessionStarted:
			SessionsStarted.WithLabelValues(string(p.Kind)).Inc()
		case event.SessionCompleted:
			SessionsCompleted.WithLabelValues(string(p.Kind)).Inc()
		case event.SessionCancelled:
			SessionsCancelled.WithLabelValues(string(p.Kind)).Inc()
		}

	case event.CookieGrantedPayloadV1:
		CookiesGranted.WithLabelValues(string(p.Rarity)).Inc()

	case event.CurrencyGrantedPayloadV1:
		CurrencyGranted.Add(float64(p.Amount))

	case event.GardenItemPayloadV1:
		switch evt.Type {
		case event.GardenItemAcquired:
			ItemsAcquired.WithLabelValues(string(p.Category), string(p.Tier)).Inc()
		case event.GardenItemPlaced:
			ItemsPlaced.WithLabelValues(string(p.Category)).Inc()
		case event.GardenItemRemoved:
			ItemsRemoved.WithLabelValues(string(p.Category)).Inc()
		case event.GardenItemUpgraded:
			ItemsUpgraded.WithLabelValues(string(p.Category), string(p.Tier)).Inc()
		case event.GardenItemSold:
			ItemsSold.WithLabelValues(string(p.Category)).Inc()
		}

	case event.ReconciledPayloadV1:
		ItemsReconciled.Add(float64(p.RemovedCount))
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
