package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/TornBot_Go/internal/scheduler"
	"github.com/osse101/TornBot_Go/internal/worker"
)

// HTTPServer is the admin surface as seen by shutdown
type HTTPServer interface {
	Stop(ctx context.Context) error
}

// Bot is the chat front-end as seen by shutdown
type Bot interface {
	Stop() error
}

// ShutdownComponents holds all components that need graceful shutdown.
// Nil members are skipped.
type ShutdownComponents struct {
	Server    HTTPServer
	Bot       Bot
	Scheduler *scheduler.Scheduler
	Pool      *worker.Pool
	Stores    *Stores
}

// GracefulShutdown stops components in dependency order:
// 1. Front-ends (no new commands or requests)
// 2. Scheduler, then the worker pool (in-flight syncs finish)
// 3. Storage last
//
// Errors during shutdown are logged but do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDown)

	if c.Bot != nil {
		if err := c.Bot.Stop(); err != nil {
			slog.Error(LogMsgBotShutdownFailed, "error", err)
		}
	}

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.Pool != nil {
		c.Pool.Stop()
	}

	if c.Stores != nil {
		c.Stores.Close()
	}

	slog.Info(LogMsgStopped)
}
