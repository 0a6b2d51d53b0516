package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2
	DefaultMaxIdleTime    = 5 * time.Minute
	DefaultMaxLifetime    = 30 * time.Minute
	// SQLiteBusyTimeoutMs bounds how long a writer waits on a locked database
	SQLiteBusyTimeoutMs = 5000
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString     = "failed to parse connection string"
	ErrMsgFailedToCreatePool          = "failed to create connection pool"
	ErrMsgFailedToPingDatabase        = "failed to ping database"
	ErrMsgFailedToBeginTransaction    = "failed to begin transaction"
	ErrMsgFailedToRollbackTransaction = "Failed to rollback transaction"
	ErrMsgFailedToOpenSQLite          = "failed to open sqlite database"
	ErrMsgFailedToCreateDataDir       = "failed to create data directory"
	ErrMsgFailedToLoadMigrations      = "failed to load migrations"
	ErrMsgFailedToMigrate             = "failed to apply migrations"
	ErrMsgUnsupportedDriver           = "unsupported database driver"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgOpenedSQLite                    = "Opened sqlite database"
	LogMsgMigrationApplied                = "Applied migration"
	LogMsgMigrationsUpToDate              = "Database schema is up to date"
)
