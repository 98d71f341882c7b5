package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/SigilForge_Go/internal/config"
	"github.com/osse101/SigilForge_Go/internal/event"
)

// EventSystem is the in-process bus plus its retrying front
type EventSystem struct {
	Bus        *event.MemoryBus
	Publisher  *event.ResilientPublisher
	DeadLetter *event.DeadLetterWriter
}

// InitializeEventSystem creates the memory bus and wraps it in a resilient
// publisher whose exhausted events land in cfg.DeadLetterPath.
func InitializeEventSystem(cfg *config.Config) (*EventSystem, error) {
	bus := event.NewMemoryBus()

	if err := os.MkdirAll(filepath.Dir(cfg.DeadLetterPath), DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterDir, err)
	}
	deadLetter, err := event.NewDeadLetterWriter(cfg.DeadLetterPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenDeadLetter, err)
	}

	publisher := event.NewResilientPublisher(bus, event.ResilientConfig{
		MaxRetries: EventDefaultMaxRetries,
		RetryDelay: EventDefaultRetryDelay,
		DeadLetter: deadLetter,
	})

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", EventDefaultMaxRetries,
		"retry_delay", EventDefaultRetryDelay,
		"deadletter_path", cfg.DeadLetterPath)

	return &EventSystem{Bus: bus, Publisher: publisher, DeadLetter: deadLetter}, nil
}
