package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/osse101/TornBot_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()

	job := &testJob{executed: &executed}
	pool.Enqueue(job)
	pool.Enqueue(job)

	// Wait a bit for workers to process
	time.Sleep(TestWorkerProcessWaitTime * time.Millisecond)

	pool.Stop()

	if atomic.LoadInt32(&executed) != TestExpectedJobCount {
		t.Errorf("Expected %d jobs executed, got %d", TestExpectedJobCount, executed)
	}
}

type blockingJob struct {
	release chan struct{}
}

func (j *blockingJob) Process(ctx context.Context) error {
	<-j.release
	return nil
}

func TestPool_TryEnqueueReportsFullQueue(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()

	job := &blockingJob{release: make(chan struct{})}
	// first is picked up by the worker, second fills the queue
	pool.Enqueue(job)
	time.Sleep(TestWorkerProcessWaitTime * time.Millisecond)
	if !pool.TryEnqueue(job) {
		t.Fatal("expected queue to accept a job")
	}
	if pool.TryEnqueue(job) {
		t.Error("expected full queue to reject a job")
	}

	close(job.release)
	pool.Stop()
}

func TestPool_StopReleasesWorkers(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()
	pool.Stop()

	checker.Check(0)
}
