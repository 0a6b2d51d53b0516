package worker

import (
	"context"
	"errors"
	"time"

	"github.com/osse101/TornBot_Go/internal/domain"
	"github.com/osse101/TornBot_Go/internal/logger"
	"github.com/osse101/TornBot_Go/internal/metrics"
)

// Syncer runs one faction attack sync pass
type Syncer interface {
	Sync(ctx context.Context, apiKey string) (*domain.SyncResult, error)
}

// KeySource resolves the credential used for scheduled syncs
type KeySource interface {
	ResolveFactionKey(ctx context.Context, userID string) (string, error)
}

// SyncJob syncs faction attacks with the global faction key
type SyncJob struct {
	syncer  Syncer
	keys    KeySource
	timeout time.Duration
}

// NewSyncJob creates a sync job. A non-positive timeout uses DefaultSyncTimeout.
func NewSyncJob(syncer Syncer, keys KeySource, timeout time.Duration) *SyncJob {
	if timeout <= 0 {
		timeout = DefaultSyncTimeout
	}
	return &SyncJob{syncer: syncer, keys: keys, timeout: timeout}
}

// Process implements Job
func (j *SyncJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)

	apiKey, err := j.keys.ResolveFactionKey(ctx, "")
	if errors.Is(err, domain.ErrNoCredential) {
		metrics.SyncRunsTotal.WithLabelValues(metrics.OutcomeSkipped).Inc()
		log.Info(LogMsgSyncJobNoKey)
		return nil
	}
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	start := time.Now()
	log.Debug(LogMsgSyncJobStarting)
	res, err := j.syncer.Sync(ctx, apiKey)
	if err != nil {
		return err
	}
	log.Info(LogMsgSyncJobCompleted,
		"added", res.Added,
		"backfill_complete", res.BackfillComplete,
		"duration", time.Since(start))
	return nil
}
