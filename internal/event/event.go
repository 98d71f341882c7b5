package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/SigilForge_Go/internal/domain"
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

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Event types
const (
	PlayerRegistered Type = domain.EventTypePlayerRegistered
	UpgradeAttempted Type = domain.EventTypeUpgradeAttempted
)

// PlayerRegisteredPayloadV1 is the typed payload for player registration events
type PlayerRegisteredPayloadV1 struct {
	PlayerID      string `json:"player_id"`
	Platform      string `json:"platform"`
	WeaponName    string `json:"weapon_name"`
	StartingLevel int    `json:"starting_level"`
	Sigils        int    `json:"sigils"`
	Timestamp     int64  `json:"timestamp"`
}

// UpgradeAttemptedPayloadV1 is the typed payload for upgrade attempts.
// PreviousLevel and NewLevel are equal unless the attempt moved the weapon.
type UpgradeAttemptedPayloadV1 struct {
	PlayerID       string               `json:"player_id"`
	WeaponName     string               `json:"weapon_name"`
	PreviousLevel  int                  `json:"previous_level"`
	NewLevel       int                  `json:"new_level"`
	Result         domain.OutcomeResult `json:"result"`
	UseSigil       bool                 `json:"use_sigil"`
	SigilsLeft     int                  `json:"sigils_left"`
	Glow           bool                 `json:"glow"`
	WriteConflicts int                  `json:"write_conflicts"`
	Timestamp      int64                `json:"timestamp"`
}

// NewPlayerRegisteredEvent creates a new player registration event
func NewPlayerRegisteredEvent(player domain.Player) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlayerRegistered,
		Payload: PlayerRegisteredPayloadV1{
			PlayerID:      player.PlayerID,
			Platform:      player.Platform,
			WeaponName:    player.Weapon.Name,
			StartingLevel: player.Weapon.UpgradeLevel,
			Sigils:        player.Inventory.SigilProtection,
			Timestamp:     time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			MetadataKeyPlayerID: player.PlayerID,
		},
	}
}

// NewUpgradeAttemptedEvent creates a new upgrade attempt event
func NewUpgradeAttemptedEvent(payload UpgradeAttemptedPayloadV1) Event {
	if payload.Timestamp == 0 {
		payload.Timestamp = time.Now().Unix()
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    UpgradeAttempted,
		Payload: payload,
		Metadata: map[string]interface{}{
			MetadataKeyPlayerID: payload.PlayerID,
			MetadataKeyResult:   string(payload.Result),
		},
	}
}

// DecodePayload returns an event's payload as T. In-process publishers hand
// over the struct itself (or a pointer to it); payloads that went through a
// serializer arrive as generic maps and are converted through JSON.
func DecodePayload[T any](input interface{}) (T, error) {
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
	}

	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, fmt.Errorf("encode %T payload: %w", input, err)
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("decode payload into %T: %w", result, err)
	}
	return result, nil
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

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

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
