package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/osse101/TornBot_Go/internal/config"
)

const (
	waitMaxAttempts   = 30
	waitRetryInterval = 2 * time.Second
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for database to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(args []string) error {
	PrintHeader("Waiting for database...")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	attempt := 0
	backoff := retry.WithMaxRetries(waitMaxAttempts-1, retry.NewConstant(waitRetryInterval))
	err = retry.Do(context.Background(), backoff, func(ctx context.Context) error {
		attempt++
		db, closeDB, err := openDB(cfg)
		if err == nil {
			err = db.PingContext(ctx)
			closeDB()
		}
		if err != nil {
			fmt.Printf("Database not ready (%d/%d): %v\n", attempt, waitMaxAttempts, err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("database failed to become ready after %d attempts: %w", attempt, err)
	}

	PrintSuccess("Database is ready")
	return nil
}
