package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/SigilForge_Go/internal/config"
	"github.com/osse101/SigilForge_Go/internal/forge"
	"github.com/osse101/SigilForge_Go/internal/handler"
	"github.com/osse101/SigilForge_Go/internal/player"
	"github.com/osse101/SigilForge_Go/internal/server"
)

// App is the fully wired process
type App struct {
	Server  *server.Server
	Forge   forge.Service
	Players player.Service
	Events  *EventSystem
	Storage *Storage
	Locker  *Locker
}

// Build wires storage, locking, events and services into an HTTP server.
// On error every resource opened so far is released.
func Build(ctx context.Context, cfg *config.Config) (app *App, err error) {
	rules, err := config.LoadUpgradeRules(cfg.RulesPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadRules, err)
	}
	slog.Info(LogMsgRulesLoaded,
		"path", cfg.RulesPath,
		"max_level", rules.MaxLevel,
		"glow_level", rules.GlowLevel,
		"overrides", len(rules.ChanceOverrides))

	storage, err := InitializeStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			storage.Close()
		}
	}()

	locker, err := InitializeLocker(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil && locker.Closer != nil {
			_ = locker.Closer.Close()
		}
	}()

	events, err := InitializeEventSystem(cfg)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = events.DeadLetter.Close()
		}
	}()

	forgeRules := forge.Rules{MaxLevel: rules.MaxLevel, GlowLevel: rules.GlowLevel}
	engine := forge.NewEngine(forgeRules, forge.WithOverrides(forge.SuccessChance, rules.ChanceOverrides), nil)
	forgeSvc := forge.NewService(storage.Repo, locker, engine, events.Publisher, forge.Config{
		MaxRetries:   cfg.UpgradeMaxRetries,
		RetryBackoff: cfg.UpgradeRetryDelay,
		LockWait:     cfg.LockWait,
	})

	playerSvc := player.NewService(storage.Repo, events.Publisher, rules, player.CacheConfig{
		Size: cfg.PlayerCacheSize,
		TTL:  cfg.PlayerCacheTTL,
	})

	if err := RegisterEventHandlers(events.Publisher, playerSvc); err != nil {
		return nil, err
	}

	var checks []handler.ReadinessCheck
	for _, c := range []*handler.ReadinessCheck{storage.Check, locker.Check} {
		if c != nil {
			checks = append(checks, *c)
		}
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		Version:        cfg.Version,
		TrustedProxies: cfg.TrustedProxies,
	}, server.Services{
		Forge:     forgeSvc,
		Players:   playerSvc,
		Rules:     forgeRules,
		Readiness: checks,
	})

	return &App{
		Server:  srv,
		Forge:   forgeSvc,
		Players: playerSvc,
		Events:  events,
		Storage: storage,
		Locker:  locker,
	}, nil
}

// Shutdown drains the app in dependency order
func (a *App) Shutdown(ctx context.Context) {
	components := ShutdownComponents{
		Server:             a.Server,
		ForgeService:       a.Forge,
		ResilientPublisher: a.Events.Publisher,
		Closers:            []namedCloser{{"deadletter", a.Events.DeadLetter}},
	}
	if a.Locker.Closer != nil {
		components.Closers = append(components.Closers, namedCloser{CheckNameRedis, a.Locker.Closer})
	}
	components.Closers = append(components.Closers, namedCloser{"storage", closerFunc(a.Storage.Close)})

	GracefulShutdown(ctx, components)
}
