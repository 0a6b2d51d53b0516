// Command sync runs one faction attack sync and prints the result as JSON.
// It uses the stored global faction key unless -key is given.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/TornBot_Go/internal/bootstrap"
	"github.com/osse101/TornBot_Go/internal/config"
	"github.com/osse101/TornBot_Go/internal/domain"
	"github.com/osse101/TornBot_Go/internal/logger"
)

func main() {
	apiKey := flag.String("key", "", "Torn API key to sync with (defaults to the stored faction key)")
	timeout := flag.Duration("timeout", 10*time.Minute, "give up after this long")
	leaderboard := flag.Bool("leaderboard", false, "print the overall leaderboard after syncing")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	// Logs go to stderr so stdout carries only the JSON result
	logger.InitLoggerWithWriter(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, logger.DefaultServiceName, cfg.Version, cfg.Environment, false), os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	if err := run(ctx, cfg, *apiKey, *leaderboard); err != nil {
		fmt.Fprintln(os.Stderr, "sync failed:", err)
		os.Exit(1)
	}
}

type output struct {
	Sync        *domain.SyncResult  `json:"sync"`
	Error       string              `json:"error,omitempty"`
	Leaderboard *domain.Leaderboard `json:"leaderboard,omitempty"`
}

func run(ctx context.Context, cfg *config.Config, apiKey string, withBoard bool) error {
	svcs, err := bootstrap.InitializeServices(ctx, cfg)
	if err != nil {
		return err
	}
	defer svcs.Stores.Close()

	if apiKey == "" {
		apiKey, err = svcs.Keys.ResolveFactionKey(ctx, "")
		if errors.Is(err, domain.ErrNoCredential) {
			return fmt.Errorf("no global faction key stored, pass -key: %w", err)
		}
		if err != nil {
			return err
		}
	}

	res, syncErr := svcs.Attacks.Sync(ctx, apiKey)
	out := output{Sync: res}
	if syncErr != nil {
		out.Error = syncErr.Error()
	}
	if withBoard {
		if out.Leaderboard, err = svcs.Attacks.OverallLeaderboard(ctx); err != nil {
			return err
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}
	return syncErr
}
