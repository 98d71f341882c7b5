package metrics

import (
	"context"

	"github.com/osse101/SigilForge_Go/internal/domain"
	"github.com/osse101/SigilForge_Go/internal/event"
	"github.com/osse101/SigilForge_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range []event.Type{event.UpgradeAttempted, event.PlayerRegistered} {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.UpgradeAttempted:
		payload, err := event.DecodePayload[event.UpgradeAttemptedPayloadV1](evt.Payload)
		if err != nil {
			logger.FromContext(ctx).Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		UpgradeAttempts.WithLabelValues(string(payload.Result)).Inc()
		WeaponLevelAfterUpgrade.Observe(float64(payload.NewLevel))
		if payload.Result == domain.OutcomeProtected {
			SigilsConsumed.Inc()
		}
		if payload.WriteConflicts > 0 {
			UpgradeWriteConflicts.Add(float64(payload.WriteConflicts))
		}

	case event.PlayerRegistered:
		payload, err := event.DecodePayload[event.PlayerRegisteredPayloadV1](evt.Payload)
		if err != nil {
			logger.FromContext(ctx).Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		PlayersRegistered.WithLabelValues(payload.Platform).Inc()
	}

	return nil
}
