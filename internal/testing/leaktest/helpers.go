// Package leaktest catches goroutines left running by background components under test.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleTimeout = 2 * time.Second
	pollInterval  = 10 * time.Millisecond
)

// GoroutineChecker records the goroutine count when created and compares against it later
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker creates a new checker and records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check fails the test when more than tolerance extra goroutines are still running
// once stopped components have had time to exit. It polls rather than sleeping a fixed time.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(settleTimeout)
	after := runtime.NumGoroutine()
	for after-g.before > tolerance && time.Now().Before(deadline) {
		time.Sleep(pollInterval)
		runtime.GC()
		after = runtime.NumGoroutine()
	}

	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}
