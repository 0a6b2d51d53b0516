package clock

import (
	"sync"
	"time"
)

// Clock provides an abstraction for time operations
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// RealClock uses the actual system time
type RealClock struct{}

// NewRealClock creates a new RealClock instance
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Since returns the duration since the given time
func (c *RealClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// SimulatedClock allows time manipulation for testing. Safe for concurrent use.
type SimulatedClock struct {
	mu      sync.RWMutex
	current time.Time
}

// NewSimulatedClock creates a new SimulatedClock starting at the given time
func NewSimulatedClock(start time.Time) *SimulatedClock {
	return &SimulatedClock{current: start}
}

// Now returns the simulated current time
func (c *SimulatedClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Since returns the duration since the given time
func (c *SimulatedClock) Since(t time.Time) time.Duration {
	return c.Now().Sub(t)
}

// Advance moves the simulated time forward by the given duration
func (c *SimulatedClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.current = c.current.Add(d)
	c.mu.Unlock()
}

// Set sets the simulated time to a specific value
func (c *SimulatedClock) Set(t time.Time) {
	c.mu.Lock()
	c.current = t
	c.mu.Unlock()
}

// StartOfDay returns local midnight of t in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}
