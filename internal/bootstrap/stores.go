package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/TornBot_Go/internal/attacks"
	"github.com/osse101/TornBot_Go/internal/config"
	"github.com/osse101/TornBot_Go/internal/database"
	"github.com/osse101/TornBot_Go/internal/database/postgres"
	"github.com/osse101/TornBot_Go/internal/database/sqlite"
	"github.com/osse101/TornBot_Go/internal/secrets"
)

// Stores holds the repository implementations for the configured driver.
// Both repositories share one connection; Close releases it.
type Stores struct {
	Leaderboard attacks.Repository
	Secrets     secrets.Repository

	close func()
}

// Ping reports whether the underlying database answers
func (s *Stores) Ping(ctx context.Context) error {
	return s.Leaderboard.Ping(ctx)
}

// Close releases the database connection
func (s *Stores) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStores connects to the configured database, applies pending migrations
// and builds the repositories on top of it.
func OpenStores(ctx context.Context, cfg *config.Config) (*Stores, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, database.DefaultMaxIdleTime, database.DefaultMaxLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStorage, err)
		}
		if err := database.MigratePool(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgStorageReady, "driver", cfg.DBDriver)
		return postgresStores(pool), nil

	case config.DriverSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStorage, err)
		}
		if err := database.Migrate(ctx, db, database.DriverSQLite); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgStorageReady, "driver", cfg.DBDriver, "path", cfg.SQLitePath)
		return sqliteStores(db), nil

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnsupportedDriver, cfg.DBDriver)
	}
}

func postgresStores(pool *pgxpool.Pool) *Stores {
	return &Stores{
		Leaderboard: postgres.NewLeaderboardRepository(pool),
		Secrets:     postgres.NewSecretsRepository(pool),
		close:       pool.Close,
	}
}

func sqliteStores(db *sql.DB) *Stores {
	return &Stores{
		Leaderboard: sqlite.NewLeaderboardRepository(db),
		Secrets:     sqlite.NewSecretsRepository(db),
		close: func() {
			if err := db.Close(); err != nil {
				slog.Error(LogMsgStorageCloseFailed, "error", err)
			}
		},
	}
}
