package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hollyoak/GrazeGarden_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// Event types published by the services
const (
	SessionStarted   Type = "session.started"
	SessionCompleted Type = "session.completed"
	SessionCancelled Type = "session.cancelled"

	RewardCookieGranted   Type = "reward.cookie"
	RewardCurrencyGranted Type = "reward.currency"

	GardenItemAcquired Type = "garden.item.acquired"
	GardenItemPlaced   Type = "garden.item.placed"
	GardenItemRemoved  Type = "garden.item.removed"
	GardenItemUpgraded Type = "garden.item.upgraded"
	GardenItemSold     Type = "garden.item.sold"
	GardenReconciled   Type = "garden.reconciled"
)

// Typed event payloads

// SessionPayloadV1 is the typed payload for session lifecycle events
type SessionPayloadV1 struct {
	UserID    string             `json:"user_id"`
	SessionID string             `json:"session_id"`
	Kind      domain.SessionKind `json:"kind"`
	Timestamp int64              `json:"timestamp"`
}

// CookieGrantedPayloadV1 is the typed payload for cookie reward events
type CookieGrantedPayloadV1 struct {
	UserID        string              `json:"user_id"`
	SessionID     string              `json:"session_id"`
	Rarity        domain.CookieRarity `json:"rarity"`
	CurrentStreak int                 `json:"current_streak"`
	Timestamp     int64               `json:"timestamp"`
}

// CurrencyGrantedPayloadV1 is the typed payload for garden currency events
type CurrencyGrantedPayloadV1 struct {
	UserID          string `json:"user_id"`
	SessionID       string `json:"session_id"`
	Amount          int    `json:"amount"`
	OrnamentGranted bool   `json:"ornament_granted"`
	OrnamentType    string `json:"ornament_type,omitempty"`
	Timestamp       int64  `json:"timestamp"`
}

// GardenItemPayloadV1 is the typed payload for garden item events
type GardenItemPayloadV1 struct {
	UserID    string              `json:"user_id"`
	Category  domain.ItemCategory `json:"category"`
	ItemType  string              `json:"item_type"`
	Tier      domain.Tier         `json:"tier"`
	X         *int                `json:"x,omitempty"`
	Y         *int                `json:"y,omitempty"`
	Amount    int                 `json:"amount,omitempty"`
	Timestamp int64               `json:"timestamp"`
}

// ReconciledPayloadV1 is the typed payload for reconciliation sweep events
type ReconciledPayloadV1 struct {
	UserID       string `json:"user_id"`
	RemovedCount int    `json:"removed_count"`
	Recovered    int    `json:"recovered"`
	Timestamp    int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewSessionEvent creates a session lifecycle event
func NewSessionEvent(eventType Type, userID, sessionID string, kind domain.SessionKind) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: SessionPayloadV1{
			UserID:    userID,
			SessionID: sessionID,
			Kind:      kind,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewCookieGrantedEvent creates a cookie reward event
func NewCookieGrantedEvent(userID, sessionID string, rarity domain.CookieRarity, currentStreak int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RewardCookieGranted,
		Payload: CookieGrantedPayloadV1{
			UserID:        userID,
			SessionID:     sessionID,
			Rarity:        rarity,
			CurrentStreak: currentStreak,
			Timestamp:     time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewCurrencyGrantedEvent creates a garden currency event
func NewCurrencyGrantedEvent(userID, sessionID string, amount int, ornamentGranted bool, ornamentType string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RewardCurrencyGranted,
		Payload: CurrencyGrantedPayloadV1{
			UserID:          userID,
			SessionID:       sessionID,
			Amount:          amount,
			OrnamentGranted: ornamentGranted,
			OrnamentType:    ornamentType,
			Timestamp:       time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewGardenItemEvent creates a garden item event. Position is optional; pass
// nil for inventory-only operations such as acquisition.
func NewGardenItemEvent(eventType Type, userID string, item domain.ItemRef, x, y *int, amount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: GardenItemPayloadV1{
			UserID:    userID,
			Category:  item.Category,
			ItemType:  item.ItemType,
			Tier:      item.Tier,
			X:         x,
			Y:         y,
			Amount:    amount,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewReconciledEvent creates a reconciliation sweep event
func NewReconciledEvent(userID string, removedCount, recovered int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GardenReconciled,
		Payload: ReconciledPayloadV1{
			UserID:       userID,
			RemovedCount: removedCount,
			Recovered:    recovered,
			Timestamp:    time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously;
// a failing handler does not stop the others.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
