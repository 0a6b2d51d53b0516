package attacks

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/osse101/TornBot_Go/internal/clock"
	"github.com/osse101/TornBot_Go/internal/domain"
)

// Service defines the interface for faction attack sync and leaderboards
type Service interface {
	// Sync ingests new attacks and advances the historical backfill by a bounded amount.
	// Concurrent calls for the same credential share one run.
	Sync(ctx context.Context, apiKey string) (*domain.SyncResult, error)
	OverallLeaderboard(ctx context.Context) (*domain.Leaderboard, error)
	// DailyLeaderboard aggregates attacks started since local midnight straight from upstream.
	DailyLeaderboard(ctx context.Context, apiKey string) (*domain.DailyLeaderboard, error)
}

// Config tunes sync paging and the daily window
type Config struct {
	RecentLookback    time.Duration
	RecentPageLimit   int
	BackfillPageLimit int
	DailyPageLimit    int
	PageSize          int
	SampleLimit       int
	RunTimeout        time.Duration
	Location          *time.Location
	Clock             clock.Clock
}

// DefaultConfig returns the standard tuning with a UTC day boundary
func DefaultConfig() Config {
	return Config{
		RecentLookback:    RecentLookback,
		RecentPageLimit:   RecentPageLimit,
		BackfillPageLimit: BackfillPageLimit,
		DailyPageLimit:    DailyPageLimit,
		PageSize:          PageSize,
		SampleLimit:       SampleLimit,
		RunTimeout:        RunTimeout,
		Location:          time.UTC,
		Clock:             clock.NewRealClock(),
	}
}

type service struct {
	repo     Repository
	upstream Upstream
	cfg      Config
	group    singleflight.Group
}

// NewService creates a new attacks service
func NewService(repo Repository, upstream Upstream, cfg Config) Service {
	def := DefaultConfig()
	if cfg.RecentLookback <= 0 {
		cfg.RecentLookback = def.RecentLookback
	}
	if cfg.RecentPageLimit <= 0 {
		cfg.RecentPageLimit = def.RecentPageLimit
	}
	if cfg.BackfillPageLimit <= 0 {
		cfg.BackfillPageLimit = def.BackfillPageLimit
	}
	if cfg.DailyPageLimit <= 0 {
		cfg.DailyPageLimit = def.DailyPageLimit
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = def.PageSize
	}
	if cfg.SampleLimit <= 0 {
		cfg.SampleLimit = def.SampleLimit
	}
	if cfg.RunTimeout <= 0 {
		cfg.RunTimeout = def.RunTimeout
	}
	if cfg.Location == nil {
		cfg.Location = def.Location
	}
	if cfg.Clock == nil {
		cfg.Clock = def.Clock
	}
	return &service{repo: repo, upstream: upstream, cfg: cfg}
}

type syncOutcome struct {
	result *domain.SyncResult
	err    error
}

func (s *service) Sync(ctx context.Context, apiKey string) (*domain.SyncResult, error) {
	if apiKey == "" {
		return nil, domain.ErrNoCredential
	}

	// The shared run outlives any single caller; each caller stops waiting on its own ctx.
	ch := s.group.DoChan(fingerprint(apiKey), func() (any, error) {
		runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.RunTimeout)
		defer cancel()
		res, err := s.sync(runCtx, apiKey)
		return syncOutcome{result: res, err: err}, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		out := r.Val.(syncOutcome)
		if out.result == nil {
			return nil, out.err
		}
		res := *out.result
		res.Samples = slices.Clone(out.result.Samples)
		return &res, out.err
	}
}

// fingerprint keys in-flight runs without keeping the credential itself around
func fingerprint(apiKey string) string {
	sum := sha256.Sum256([]byte(apiKey))
	return hex.EncodeToString(sum[:8])
}
