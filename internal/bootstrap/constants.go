package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0o755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0o640
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingTornBot     = "Starting TornBot"
	LogMsgConfigurationLoaded = "Configuration loaded"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Storage
// =============================================================================

const (
	// StorageInitTimeout bounds connecting and migrating at startup
	StorageInitTimeout = 2 * time.Minute

	LogMsgStorageReady       = "Storage ready"
	ErrMsgUnsupportedDriver  = "unsupported DB_DRIVER"
	ErrMsgFailedOpenStorage  = "failed to open storage"
	ErrMsgFailedMigrate      = "failed to migrate storage"
	LogMsgStorageCloseFailed = "Storage close failed"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDown         = "Shutting down..."
	LogMsgStopped              = "Stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgBotShutdownFailed    = "Discord bot shutdown failed"
)

// =============================================================================
// Services
// =============================================================================

const (
	ErrMsgFailedLoadKey     = "failed to load encryption key"
	ErrMsgFailedCreateCipher ="failed to create cipher"
	ErrMsgFailedNameCache   = "failed to create name resolver"
)
