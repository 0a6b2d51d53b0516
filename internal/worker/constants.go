package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for worker pool operations
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgQueueFull       = "Worker queue full, dropping job"
)

// ============================================================================
// Log Messages - Sync Job
// ============================================================================

// Log messages for the faction sync job
const (
	LogMsgSyncJobStarting  = "Scheduled faction sync starting"
	LogMsgSyncJobCompleted = "Scheduled faction sync completed"
	LogMsgSyncJobNoKey     = "Scheduled faction sync skipped, no faction key configured"
)

// DefaultSyncTimeout bounds one scheduled sync run
const DefaultSyncTimeout = 5 * time.Minute

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
