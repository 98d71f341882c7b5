package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/SigilForge_Go/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, up-to <v>, down, status, version)"
}

func (c *MigrateCommand) Run(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, up-to, down, status, version")
	}
	subcmd := args[0]

	dbURL := databaseURL()
	PrintInfo("Connecting to database: %s", redactPassword(dbURL))

	pool, err := database.NewPool(dbURL, 2, time.Minute, time.Hour)
	if err != nil {
		return err
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, database.Migrations())
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	switch subcmd {
	case "up":
		results, err := provider.Up(ctx)
		printResults(results)
		return err

	case "up-to":
		if len(args) < 2 {
			return fmt.Errorf("target version required for up-to")
		}
		version, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid version %q: %w", args[1], err)
		}
		results, err := provider.UpTo(ctx, version)
		printResults(results)
		return err

	case "down":
		result, err := provider.Down(ctx)
		if result != nil {
			printResults([]*goose.MigrationResult{result})
		}
		return err

	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}
		PrintHeader("Migration status")
		for _, s := range statuses {
			applied := "pending"
			if s.State == goose.StateApplied {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("  %05d  %-40s %s\n", s.Source.Version, s.Source.Path, applied)
		}
		return nil

	case "version":
		v, err := provider.GetDBVersion(ctx)
		if err != nil {
			return err
		}
		PrintSuccess("Database version: %d", v)
		return nil

	default:
		return fmt.Errorf("unknown subcommand: %s", subcmd)
	}
}

func printResults(results []*goose.MigrationResult) {
	if len(results) == 0 {
		PrintInfo("No migrations to apply")
		return
	}
	for _, r := range results {
		if r.Error != nil {
			PrintError("%s: %v", r.Source.Path, r.Error)
			continue
		}
		PrintSuccess("%s %s (%s)", r.Direction, r.Source.Path, r.Duration)
	}
}
