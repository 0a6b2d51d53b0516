package main

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/jackc/pgx/v5/stdlib"

	"github.com/osse101/TornBot_Go/internal/config"
	"github.com/osse101/TornBot_Go/internal/database"
	"github.com/osse101/TornBot_Go/migrations"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, status, create)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, status, create")
	}

	// create only writes a file, once per dialect
	if args[0] == "create" {
		if len(args) < 2 {
			return fmt.Errorf("migration name required for create")
		}
		for _, dir := range []string{migrations.PostgresDir, migrations.SQLiteDir} {
			if err := runCommandVerbose("go", "run", "github.com/pressly/goose/v3/cmd/goose",
				"-dir", filepath.Join("migrations", dir), "create", args[1], "sql"); err != nil {
				return err
			}
		}
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, closeDB, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer closeDB()

	ctx := context.Background()
	switch args[0] {
	case "up":
		PrintHeader(fmt.Sprintf("Migrating %s database", cfg.DBDriver))
		if err := database.Migrate(ctx, db, cfg.DBDriver); err != nil {
			return err
		}
		PrintSuccess("Migrations applied")
		return nil
	case "status":
		statuses, err := database.MigrationStatus(ctx, db, cfg.DBDriver)
		if err != nil {
			return err
		}
		PrintHeader(fmt.Sprintf("Migration status (%s)", cfg.DBDriver))
		for _, st := range statuses {
			if st.AppliedAt.IsZero() {
				PrintWarning("%05d %s  %s", st.Source.Version, filepath.Base(st.Source.Path), st.State)
				continue
			}
			PrintInfo("%05d %s  %s at %s", st.Source.Version, filepath.Base(st.Source.Path), st.State, st.AppliedAt.Format("2006-01-02 15:04"))
		}
		return nil
	default:
		return fmt.Errorf("unknown subcommand %q", args[0])
	}
}

// openDB returns a database/sql handle for the configured driver
func openDB(cfg *config.Config) (*sql.DB, func(), error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		pool, err := database.NewPool(cfg.GetDBConnString(), 1, database.DefaultMaxIdleTime, database.DefaultMaxLifetime)
		if err != nil {
			return nil, nil, err
		}
		db := stdlib.OpenDBFromPool(pool)
		return db, func() {
			db.Close()
			pool.Close()
		}, nil
	case config.DriverSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}
