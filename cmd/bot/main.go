package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/TornBot_Go/internal/bootstrap"
	"github.com/osse101/TornBot_Go/internal/config"
	"github.com/osse101/TornBot_Go/internal/discord"
	"github.com/osse101/TornBot_Go/internal/scheduler"
	"github.com/osse101/TornBot_Go/internal/server"
	"github.com/osse101/TornBot_Go/internal/worker"
)

const (
	syncWorkers   = 1
	syncQueueSize = 1

	shutdownTimeout = 30 * time.Second
)

// @title TornBot admin API
// @version 1.0
// @description Health, metrics, faction leaderboard and manual sync endpoints for the TornBot service.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	initCtx, cancel := context.WithTimeout(context.Background(), bootstrap.StorageInitTimeout)
	svcs, err := bootstrap.InitializeServices(initCtx, cfg)
	cancel()
	if err != nil {
		return err
	}

	pool := worker.NewPool(syncWorkers, syncQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.SyncInterval, worker.NewSyncJob(svcs.Attacks, svcs.Keys, worker.DefaultSyncTimeout), true)
	slog.Info("Faction sync scheduled", "interval", cfg.SyncInterval)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		Version:        cfg.Version,
		TrustedProxies: cfg.TrustedProxies,
		Store:          svcs.Stores,
		Leaderboard:    svcs.Attacks,
		Keys:           svcs.Keys,
	})
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("Admin server failed", "error", err)
		}
	}()

	components := bootstrap.ShutdownComponents{
		Server:    srv,
		Scheduler: sched,
		Pool:      pool,
		Stores:    svcs.Stores,
	}

	if cfg.DiscordToken == "" {
		slog.Warn("DISCORD_TOKEN not set, running without the Discord bot")
	} else {
		bot, err := discord.New(discord.Config{Token: cfg.DiscordToken, AppID: cfg.DiscordAppID}, &discord.Deps{
			Attacks:  svcs.Attacks,
			Keys:     svcs.Keys,
			Names:    svcs.Names,
			Verifier: svcs.Torn,
			IsOwner:  cfg.IsOwner,
			Clock:    svcs.Clock,
			Location: cfg.Location(),
		})
		if err != nil {
			bootstrap.GracefulShutdown(context.Background(), components)
			return err
		}
		if err := bot.Start(); err != nil {
			bootstrap.GracefulShutdown(context.Background(), components)
			return err
		}
		components.Bot = bot

		forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
		if err := bot.RegisterCommands(forceUpdate); err != nil {
			// Commands registered by an earlier run keep working
			slog.Error("Failed to register commands", "error", err)
		}
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(ctx, components)
	return nil
}
