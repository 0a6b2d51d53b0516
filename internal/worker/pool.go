package worker

import (
	"context"
	"sync"

	"github.com/osse101/TornBot_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// Pool represents a worker pool
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker is the worker loop
func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			// Each job gets its own id so its log lines can be correlated
			ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
			if err := job.Process(ctx); err != nil {
				logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
			}
		case <-p.quit:
			return
		}
	}
}

// Enqueue adds a job to the queue, blocking while the queue is full
func (p *Pool) Enqueue(job Job) {
	select {
	case p.jobQueue <- job:
	case <-p.quit:
	}
}

// TryEnqueue adds a job without blocking and reports whether it was queued
func (p *Pool) TryEnqueue(job Job) bool {
	select {
	case p.jobQueue <- job:
		return true
	default:
		logger.FromContext(context.Background()).Warn(LogMsgQueueFull)
		return false
	}
}

// Stop stops the workers and waits for them to finish
func (p *Pool) Stop() {
	close(p.quit)
	p.wg.Wait()
}
