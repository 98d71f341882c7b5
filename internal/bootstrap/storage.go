package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SigilForge_Go/internal/config"
	"github.com/osse101/SigilForge_Go/internal/database"
	"github.com/osse101/SigilForge_Go/internal/database/memory"
	"github.com/osse101/SigilForge_Go/internal/database/postgres"
	"github.com/osse101/SigilForge_Go/internal/handler"
	"github.com/osse101/SigilForge_Go/internal/repository"
)

// Storage is the selected player store. Pool is nil for the memory driver.
type Storage struct {
	Repo  repository.Player
	Pool  *pgxpool.Pool
	Check *handler.ReadinessCheck
}

// InitializeStorage opens the store named by cfg.StorageDriver and, for
// postgres, applies pending migrations when cfg.AutoMigrate is set.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		slog.Warn(LogMsgStorageInitialized, "driver", cfg.StorageDriver, "durable", false)
		return &Storage{Repo: memory.NewStore()}, nil

	case config.StorageDriverPostgres:
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdle, cfg.DBMaxLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
		}

		pingCtx, cancel := context.WithTimeout(ctx, StartupPingTimeout)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
		}

		if cfg.AutoMigrate {
			if err := database.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
			}
			slog.Info(LogMsgMigrationsApplied)
		}

		slog.Info(LogMsgStorageInitialized, "driver", cfg.StorageDriver, "host", cfg.DBHost, "db", cfg.DBName)
		return &Storage{
			Repo:  postgres.NewPlayerRepository(pool),
			Pool:  pool,
			Check: &handler.ReadinessCheck{Name: CheckNamePostgres, Pinger: pool},
		}, nil

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStorageDriver, cfg.StorageDriver)
	}
}

// Close releases the connection pool, if any
func (s *Storage) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}
