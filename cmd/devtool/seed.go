package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/SigilForge_Go/internal/config"
	"github.com/osse101/SigilForge_Go/internal/database"
	"github.com/osse101/SigilForge_Go/internal/database/postgres"
	"github.com/osse101/SigilForge_Go/internal/domain"
	"github.com/osse101/SigilForge_Go/internal/event"
	"github.com/osse101/SigilForge_Go/internal/player"
)

// seedPlayers are created by `devtool seed`. Existing ids are skipped.
var seedPlayers = []player.RegisterRequest{
	{PlayerID: "seed-alice", Username: "alice", Platform: domain.PlatformAPI},
	{PlayerID: "seed-bob", Username: "bob", Platform: domain.PlatformAPI},
	{PlayerID: "seed-carol", Username: "carol", Platform: domain.PlatformDiscord},
}

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Register demo players using the rules file (RULES_PATH)"
}

func (c *SeedCommand) Run(ctx context.Context, args []string) error {
	rules, err := config.LoadUpgradeRules(getEnv("RULES_PATH", config.ConfigPathUpgradeRules))
	if err != nil {
		return err
	}

	dbURL := databaseURL()
	PrintInfo("Connecting to database: %s", redactPassword(dbURL))

	pool, err := database.NewPool(dbURL, 2, time.Minute, time.Hour)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		return err
	}

	svc := player.NewService(postgres.NewPlayerRepository(pool), event.NewMemoryBus(), rules, player.CacheConfig{})

	created := 0
	for _, req := range seedPlayers {
		p, err := svc.RegisterPlayer(ctx, req)
		switch {
		case errors.Is(err, domain.ErrPlayerAlreadyExists):
			PrintWarning("%s already exists, skipped", req.PlayerID)
		case err != nil:
			return fmt.Errorf("seed %s: %w", req.PlayerID, err)
		default:
			created++
			PrintSuccess("%s: %s +%d, %d sigil(s)", p.PlayerID, p.Weapon.Name, p.Weapon.UpgradeLevel, p.Inventory.SigilProtection)
		}
	}

	PrintInfo("Seeded %d of %d players", created, len(seedPlayers))
	return nil
}
