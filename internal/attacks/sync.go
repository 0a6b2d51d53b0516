package attacks

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/osse101/TornBot_Go/internal/domain"
	"github.com/osse101/TornBot_Go/internal/logger"
	"github.com/osse101/TornBot_Go/internal/metrics"
	"github.com/osse101/TornBot_Go/internal/torn"
)

// syncRun accumulates the state of a single sync invocation
type syncRun struct {
	added     int
	newest    int64
	oldest    int64
	samples   []domain.AttackSample
	maxSample int
	// backfill was already complete before this run
	wasDone bool
}

func (r *syncRun) record(a domain.Attack) {
	r.added++
	if a.Started > r.newest {
		r.newest = a.Started
	}
	if r.oldest == 0 || a.Started < r.oldest {
		r.oldest = a.Started
	}
	if len(r.samples) < r.maxSample {
		r.samples = append(r.samples, Sample(a))
	}
}

func (s *service) sync(ctx context.Context, apiKey string) (*domain.SyncResult, error) {
	log := logger.FromContext(ctx)
	start := time.Now()
	run := &syncRun{maxSample: s.cfg.SampleLimit}

	res, err := s.runPasses(ctx, apiKey, run)

	metrics.SyncDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SyncRunsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		log.Warn(LogMsgSyncFailed, "error", err, "added", run.added)
		return res, err
	}
	metrics.SyncRunsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	log.Info(LogMsgSyncComplete, "added", res.Added, "backfill_complete", res.BackfillComplete,
		"backfill_cursor", res.BackfillCursor)
	return res, nil
}

func (s *service) runPasses(ctx context.Context, apiKey string, run *syncRun) (*domain.SyncResult, error) {
	log := logger.FromContext(ctx)

	since, err := s.recentSince(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.upstream.FetchAttacksSince(ctx, apiKey, since, s.cfg.RecentPageLimit, s.cfg.PageSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRecentPassFailed, err)
	}
	if err := s.applyAll(ctx, run, recent, metrics.PhaseRecent); err != nil {
		return run.result(false, 0, 0), fmt.Errorf("%s: %w", ErrMsgRecentPassFailed, err)
	}
	log.Debug(LogMsgRecentPass, "since", since, "fetched", len(recent), "added", run.added)

	done, cursor, moved, backfillErr := s.backfill(ctx, apiKey, run)

	if err := s.persist(ctx, run, done, cursor, moved); err != nil {
		return run.result(done, cursor, 0), errors.Join(backfillErr, err)
	}

	tracked, err := s.metaInt(ctx, domain.MetaTrackedSince)
	if err != nil {
		return run.result(done, cursor, 0), errors.Join(backfillErr, err)
	}

	res := run.result(done, cursor, tracked)
	if backfillErr != nil {
		return res, fmt.Errorf("%s: %w", ErrMsgBackfillPassFailed, backfillErr)
	}
	return res, nil
}

// recentSince returns the lower bound of the recent window
func (s *service) recentSince(ctx context.Context) (int64, error) {
	raw, ok, err := s.repo.GetMeta(ctx, domain.MetaLastSyncStarted)
	if err != nil || !ok {
		return 0, err
	}
	last, perr := strconv.ParseInt(raw, 10, 64)
	if perr != nil {
		logger.FromContext(ctx).Warn(LogMsgBadWatermark, "value", raw)
		return 0, nil
	}
	return max(0, last-int64(s.cfg.RecentLookback/time.Second)), nil
}

// backfill walks older pages from the stored cursor. Progress made before a failure is kept.
func (s *service) backfill(ctx context.Context, apiKey string, run *syncRun) (done bool, cursor int64, moved bool, err error) {
	log := logger.FromContext(ctx)

	flag, _, err := s.repo.GetMeta(ctx, domain.MetaBackfillDone)
	if err != nil {
		return false, 0, false, err
	}
	cursor, err = s.metaInt(ctx, domain.MetaBackfillTo)
	if err != nil {
		return false, 0, false, err
	}
	if flag == domain.MetaTrue {
		run.wasDone = true
		return true, cursor, false, nil
	}

	before := run.added
	for page := 0; page < s.cfg.BackfillPageLimit; page++ {
		items, ferr := s.upstream.FetchAttacksPage(ctx, apiKey, cursor, s.cfg.PageSize)
		if ferr != nil {
			return false, cursor, moved, ferr
		}
		if len(items) == 0 {
			log.Info(LogMsgBackfillExhausted, "cursor", cursor)
			return true, cursor, moved, nil
		}
		if aerr := s.applyAll(ctx, run, items, metrics.PhaseBackfill); aerr != nil {
			return false, cursor, moved, aerr
		}

		next := torn.NextCursor(cursor, items[len(items)-1].Ended.Value)
		if next <= 0 {
			log.Info(LogMsgBackfillCursorEnd, "cursor", cursor)
			return true, cursor, moved, nil
		}
		cursor, moved = next, true
	}

	log.Debug(LogMsgBackfillPass, "cursor", cursor, "added", run.added-before)
	return false, cursor, moved, nil
}

func (s *service) applyAll(ctx context.Context, run *syncRun, items []torn.Attack, phase string) error {
	log := logger.FromContext(ctx)
	for _, item := range items {
		a, err := Normalize(item)
		if err != nil {
			log.Debug(LogMsgSkippingMalformed, "error", err)
			continue
		}

		inserted, err := s.repo.ApplyAttack(ctx, a)
		if err != nil {
			return err
		}
		if inserted {
			run.record(a)
			metrics.AttacksAddedTotal.WithLabelValues(phase).Inc()
		}
	}
	return nil
}

func (s *service) persist(ctx context.Context, run *syncRun, done bool, cursor int64, moved bool) error {
	if run.newest > 0 {
		if _, err := s.repo.AdvanceMetaIfGreater(ctx, domain.MetaLastSyncStarted, run.newest); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgPersistFailed, err)
		}
	}
	if run.oldest > 0 {
		if _, err := s.repo.LowerMetaIfLess(ctx, domain.MetaTrackedSince, run.oldest); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgPersistFailed, err)
		}
	}
	if moved {
		if err := s.repo.SetMeta(ctx, domain.MetaBackfillTo, strconv.FormatInt(cursor, 10)); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgPersistFailed, err)
		}
	}
	if done && !run.wasDone {
		if err := s.repo.SetMeta(ctx, domain.MetaBackfillDone, domain.MetaTrue); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgPersistFailed, err)
		}
	}
	return nil
}

func (s *service) metaInt(ctx context.Context, key string) (int64, error) {
	raw, ok, err := s.repo.GetMeta(ctx, key)
	if err != nil || !ok {
		return 0, err
	}
	v, _ := strconv.ParseInt(raw, 10, 64)
	return v, nil
}

func (r *syncRun) result(done bool, cursor, tracked int64) *domain.SyncResult {
	return &domain.SyncResult{
		Added:            r.added,
		BackfillComplete: done,
		NewestObserved:   r.newest,
		OldestObserved:   r.oldest,
		BackfillCursor:   cursor,
		TrackedSince:     tracked,
		Samples:          r.samples,
	}
}
