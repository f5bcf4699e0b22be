package engine

import (
	"context"
	"sync/atomic"
	"time"
)

// Clock converts elapsed wall time into whole fixed steps
// Leftover time carries to the next call; a long stall yields at most maxCatchUp steps
type Clock struct {
	step       time.Duration
	maxCatchUp int
	acc        time.Duration
}

// NewClock creates a clock issuing steps of the given duration
func NewClock(step time.Duration, maxCatchUp int) *Clock {
	if maxCatchUp < 1 {
		maxCatchUp = 1
	}
	return &Clock{step: step, maxCatchUp: maxCatchUp}
}

// Accumulate adds elapsed time and returns the number of steps now due
func (c *Clock) Accumulate(elapsed time.Duration) int {
	if elapsed > 0 {
		c.acc += elapsed
	}
	n := int(c.acc / c.step)
	if n > c.maxCatchUp {
		// Drop the backlog instead of spiraling
		n = c.maxCatchUp
		c.acc = 0
		return n
	}
	c.acc -= time.Duration(n) * c.step
	return n
}

// DT returns the step length in seconds
func (c *Clock) DT() float64 {
	return c.step.Seconds()
}

// Step returns the step duration
func (c *Clock) Step() time.Duration {
	return c.step
}

// Reset discards accumulated time
func (c *Clock) Reset() {
	c.acc = 0
}

// TickHooks are the callbacks driven by the scheduler on each wakeup
type TickHooks struct {
	// Input runs first on every wakeup, paused or not
	Input func()
	// Step runs once per due simulation step
	Step func(dt float64)
	// Frame runs last on every wakeup, paused or not
	Frame func()
}

// Scheduler wakes on a fixed ticker and runs due simulation steps
// Paused time is not accumulated, so resuming never causes a burst of catch-up steps
type Scheduler struct {
	clock    *Clock
	interval time.Duration
	time     TimeSource
	paused   atomic.Bool
	steps    atomic.Uint64
}

// NewScheduler creates a scheduler for the given clock
// interval is the wakeup period, normally equal to the clock step
func NewScheduler(clock *Clock, interval time.Duration, ts TimeSource) *Scheduler {
	if ts == nil {
		ts = SystemTime{}
	}
	if interval <= 0 {
		interval = clock.Step()
	}
	return &Scheduler{clock: clock, interval: interval, time: ts}
}

func (s *Scheduler) Pause()       { s.paused.Store(true) }
func (s *Scheduler) Resume()      { s.paused.Store(false) }
func (s *Scheduler) Paused() bool { return s.paused.Load() }

// TogglePause flips the pause state and returns the new value
func (s *Scheduler) TogglePause() bool {
	for {
		old := s.paused.Load()
		if s.paused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Steps returns the number of simulation steps run so far
func (s *Scheduler) Steps() uint64 {
	return s.steps.Load()
}

// Run drives hooks until ctx is cancelled; returns ctx's error
func (s *Scheduler) Run(ctx context.Context, hooks TickHooks) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	last := s.time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		s.Wake(&last, hooks)
	}
}

// Wake performs one scheduler wakeup, advancing last to now
func (s *Scheduler) Wake(last *time.Time, hooks TickHooks) {
	if hooks.Input != nil {
		hooks.Input()
	}

	now := s.time.Now()
	elapsed := now.Sub(*last)
	*last = now

	if !s.paused.Load() {
		n := s.clock.Accumulate(elapsed)
		dt := s.clock.DT()
		for i := 0; i < n; i++ {
			if hooks.Step != nil {
				hooks.Step(dt)
			}
			s.steps.Add(1)
		}
	}

	if hooks.Frame != nil {
		hooks.Frame()
	}
}
