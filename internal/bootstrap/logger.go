package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/TornBot_Go/internal/config"
	"github.com/osse101/TornBot_Go/internal/logger"
)

// SetupLogger initializes the application logger on stdout and, when LogDir is set,
// a timestamped session file. Old session files beyond the retention count are removed.
// Returns the log file handle (caller must close; nil without a LogDir).
func SetupLogger(cfg *config.Config) (*os.File, error) {
	addSource := cfg.Environment == logger.EnvironmentDev
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)

	var (
		w       io.Writer = os.Stdout
		logFile *os.File
	)
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogsDir, err)
		}

		cleanupLogs(cfg.LogDir, LogFileRetentionCount)

		name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat)))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenLogFile, err)
		}
		logFile = f
		w = io.MultiWriter(os.Stdout, f)
	}

	logger.InitLoggerWithWriter(loggerConfig, w)

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Info(LogMsgStartingTornBot,
		"environment", cfg.Environment,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"db_driver", cfg.DBDriver,
		"port", cfg.Port,
		"sync_interval", cfg.SyncInterval,
		"timezone", cfg.Timezone,
		"owners", len(cfg.OwnerIDs))

	return logFile, nil
}

// cleanupLogs removes the oldest session logs so that at most keep remain.
// Session names embed a sortable timestamp, so name order is age order.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			names = append(names, entry.Name())
		}
	}
	if len(names) <= keep {
		return
	}

	sort.Strings(names)
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", name, "error", err)
		}
	}
}
