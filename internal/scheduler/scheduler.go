package scheduler

import (
	"sync"
	"time"

	"github.com/osse101/TornBot_Go/internal/worker"
)

// Scheduler manages scheduled jobs
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval.
// When runNow is set the job is also queued immediately.
// A tick is dropped while the queue is still full, so slow jobs do not pile up.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job, runNow bool) {
	if runNow {
		s.workerPool.TryEnqueue(job)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.workerPool.TryEnqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	close(s.quit)
	s.wg.Wait()
}
