package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	waitForDBRetries  = 30
	waitForDBInterval = 2 * time.Second
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for database to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(ctx context.Context, args []string) error {
	PrintHeader("Waiting for database...")
	dbURL := databaseURL()

	var lastErr error
	for i := 0; i < waitForDBRetries; i++ {
		lastErr = ping(ctx, dbURL)
		if lastErr == nil {
			PrintSuccess("Database is ready")
			return nil
		}

		fmt.Printf("Database not ready (%d/%d): %v\n", i+1, waitForDBRetries, lastErr)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitForDBInterval):
		}
	}

	return fmt.Errorf("database failed to become ready after %d attempts: %w", waitForDBRetries, lastErr)
}

func ping(ctx context.Context, dbURL string) error {
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	pingCtx, cancel := context.WithTimeout(ctx, waitForDBInterval)
	defer cancel()
	return pool.Ping(pingCtx)
}
