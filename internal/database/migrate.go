package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/TornBot_Go/internal/logger"
	"github.com/osse101/TornBot_Go/migrations"
)

// Migrate applies all pending embedded migrations for driver to db
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	provider, err := newProvider(db, driver)
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	log := logger.FromContext(ctx)
	if len(results) == 0 {
		log.Info(LogMsgMigrationsUpToDate, "driver", driver)
	}
	for _, r := range results {
		log.Info(LogMsgMigrationApplied, "version", r.Source.Version, "duration", r.Duration)
	}
	return nil
}

// MigrationStatus lists every embedded migration and whether it has been applied to db
func MigrationStatus(ctx context.Context, db *sql.DB, driver string) ([]*goose.MigrationStatus, error) {
	provider, err := newProvider(db, driver)
	if err != nil {
		return nil, err
	}
	return provider.Status(ctx)
}

func newProvider(db *sql.DB, driver string) (*goose.Provider, error) {
	var (
		dialect goose.Dialect
		dir     string
	)
	switch driver {
	case DriverPostgres:
		dialect, dir = goose.DialectPostgres, migrations.PostgresDir
	case DriverSQLite:
		dialect, dir = goose.DialectSQLite3, migrations.SQLiteDir
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnsupportedDriver, driver)
	}

	fsys, err := fs.Sub(migrations.FS, dir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadMigrations, err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadMigrations, err)
	}
	return provider, nil
}

// MigratePool applies the Postgres migrations through a database/sql view of pool
func MigratePool(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	return Migrate(ctx, db, DriverPostgres)
}
