package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/SigilForge_Go/internal/concurrency"
	"github.com/osse101/SigilForge_Go/internal/config"
	"github.com/osse101/SigilForge_Go/internal/handler"
)

// Locker is the selected per-player lock. Closer and Check are nil for the
// in-process backend.
type Locker struct {
	concurrency.Locker
	Closer io.Closer
	Check  *handler.ReadinessCheck
}

// InitializeLocker builds the lock backend named by cfg.LockBackend
func InitializeLocker(ctx context.Context, cfg *config.Config) (*Locker, error) {
	switch cfg.LockBackend {
	case config.LockBackendMemory:
		slog.Info(LogMsgLockerInitialized, "backend", cfg.LockBackend)
		return &Locker{Locker: concurrency.NewLockManager()}, nil

	case config.LockBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		rl := concurrency.NewRedisLocker(client, cfg.LockTTL)

		pingCtx, cancel := context.WithTimeout(ctx, StartupPingTimeout)
		defer cancel()
		if err := rl.Ping(pingCtx); err != nil {
			_ = rl.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectRedis, err)
		}

		slog.Info(LogMsgLockerInitialized, "backend", cfg.LockBackend, "addr", cfg.RedisAddr, "ttl", cfg.LockTTL)
		return &Locker{
			Locker: rl,
			Closer: rl,
			Check:  &handler.ReadinessCheck{Name: CheckNameRedis, Pinger: rl},
		}, nil

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownLockBackend, cfg.LockBackend)
	}
}
