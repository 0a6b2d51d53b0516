package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TornBot_Go/internal/config"
	"github.com/osse101/TornBot_Go/internal/domain"
	"github.com/osse101/TornBot_Go/internal/scheduler"
	"github.com/osse101/TornBot_Go/internal/worker"
)

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, base.Add(time.Duration(i)*time.Hour).Format(LogFileTimestampFormat))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o600))

	cleanupLogs(dir, 9)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var logs []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == LogFileExtension {
			logs = append(logs, e.Name())
		}
	}
	assert.Len(t, logs, 9)
	assert.NotContains(t, logs, fmt.Sprintf(LogFileNamePattern, base.Format(LogFileTimestampFormat)))
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestOpenStores_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		DBDriver:   config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "bot.db"),
	}

	stores, err := OpenStores(ctx, cfg)
	require.NoError(t, err)
	defer stores.Close()

	require.NoError(t, stores.Ping(ctx))

	require.NoError(t, stores.Leaderboard.SetMeta(ctx, domain.MetaBackfillDone, domain.MetaTrue))
	v, ok, err := stores.Leaderboard.GetMeta(ctx, domain.MetaBackfillDone)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.MetaTrue, v)

	require.NoError(t, stores.Secrets.PutSecret(ctx, "user:1", "sealed"))
	got, ok, err := stores.Secrets.GetSecret(ctx, "user:1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "sealed", got)
}

func TestOpenStores_UnsupportedDriver(t *testing.T) {
	_, err := OpenStores(context.Background(), &config.Config{DBDriver: "mysql"})
	assert.ErrorContains(t, err, ErrMsgUnsupportedDriver)
}

type stopRecorder struct {
	order *[]string
	name  string
	err   error
}

func (r stopRecorder) Stop() error {
	*r.order = append(*r.order, r.name)
	return r.err
}

type serverRecorder struct{ stopRecorder }

func (r serverRecorder) Stop(ctx context.Context) error { return r.stopRecorder.Stop() }

func TestGracefulShutdown_Order(t *testing.T) {
	var order []string
	pool := worker.NewPool(1, 1)
	pool.Start()
	sched := scheduler.New(pool)

	GracefulShutdown(context.Background(), ShutdownComponents{
		Bot:       stopRecorder{order: &order, name: "bot", err: assert.AnError},
		Server:    serverRecorder{stopRecorder{order: &order, name: "server"}},
		Scheduler: sched,
		Pool:      pool,
	})

	assert.Equal(t, []string{"bot", "server"}, order)
}

func TestGracefulShutdown_NilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}
