package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/SigilForge_Go/internal/event"
	"github.com/osse101/SigilForge_Go/internal/metrics"
	"github.com/osse101/SigilForge_Go/internal/player"
)

// RegisterEventHandlers subscribes every in-process consumer to the bus
func RegisterEventHandlers(bus event.Bus, players player.Service) error {
	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsRegistered)

	players.Register(bus)
	slog.Info(LogMsgPlayerCacheRegistered)

	return nil
}
