package bootstrap

import (
	"context"
	"io"
	"log/slog"

	"github.com/osse101/SigilForge_Go/internal/event"
	"github.com/osse101/SigilForge_Go/internal/server"
)

type namedCloser struct {
	name string
	io.Closer
}

type closerFunc func()

func (f closerFunc) Close() error {
	f()
	return nil
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	ForgeService       shutdownableService
	ResilientPublisher *event.ResilientPublisher
	// Closers run last, in order
	Closers []namedCloser
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. HTTP server (stop accepting new requests)
// 2. Forge service (finish in-flight upgrades)
// 3. Event publisher (flush pending retries)
// 4. Backing stores
//
// Errors are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.ForgeService != nil {
		shutdownService(ctx, ServiceNameForge, components.ForgeService)
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	for _, c := range components.Closers {
		if err := c.Close(); err != nil {
			slog.Error(LogMsgCloseFailed, "resource", c.name, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
