package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

// TestClockAccumulate verifies whole steps are issued and remainders carry over
func TestClockAccumulate(t *testing.T) {
	c := NewClock(10*time.Millisecond, 5)

	tests := []struct {
		elapsed time.Duration
		want    int
	}{
		{4 * time.Millisecond, 0},
		{4 * time.Millisecond, 0},
		{4 * time.Millisecond, 1}, // 12ms accumulated
		{18 * time.Millisecond, 2},
		{0, 0},
		{-5 * time.Millisecond, 0},
	}

	for i, tt := range tests {
		if got := c.Accumulate(tt.elapsed); got != tt.want {
			t.Errorf("Step %d: Accumulate(%v) = %d, want %d", i, tt.elapsed, got, tt.want)
		}
	}
}

// TestClockCatchUpCap verifies a long stall yields at most maxCatchUp steps and drops the backlog
func TestClockCatchUpCap(t *testing.T) {
	c := NewClock(10*time.Millisecond, 3)
	if got := c.Accumulate(time.Second); got != 3 {
		t.Errorf("Accumulate after stall = %d, want 3", got)
	}
	if got := c.Accumulate(5 * time.Millisecond); got != 0 {
		t.Errorf("Backlog carried over: got %d steps", got)
	}
	if c.DT() != 0.01 {
		t.Errorf("DT = %v, want 0.01", c.DT())
	}
}

// TestSchedulerWake verifies steps follow manual time and stop while paused
func TestSchedulerWake(t *testing.T) {
	mt := NewManualTime(time.Unix(0, 0))
	s := NewScheduler(NewClock(10*time.Millisecond, 5), 0, mt)

	var steps, inputs, frames int
	hooks := TickHooks{
		Input: func() { inputs++ },
		Step:  func(dt float64) { steps++ },
		Frame: func() { frames++ },
	}
	last := mt.Now()

	mt.Advance(30 * time.Millisecond)
	s.Wake(&last, hooks)
	if steps != 3 {
		t.Fatalf("Steps = %d, want 3", steps)
	}

	s.Pause()
	mt.Advance(time.Second)
	s.Wake(&last, hooks)
	if steps != 3 {
		t.Errorf("Steps while paused = %d, want 3", steps)
	}

	// Paused time must not turn into catch-up steps
	if s.TogglePause() {
		t.Fatal("TogglePause should resume")
	}
	mt.Advance(10 * time.Millisecond)
	s.Wake(&last, hooks)
	if steps != 4 {
		t.Errorf("Steps after resume = %d, want 4", steps)
	}

	if inputs != 3 || frames != 3 {
		t.Errorf("Inputs/frames = %d/%d, want 3/3", inputs, frames)
	}
	if s.Steps() != 4 {
		t.Errorf("Steps() = %d, want 4", s.Steps())
	}
}

// TestSchedulerRunStopsOnCancel verifies Run drives steps until the context ends
func TestSchedulerRunStopsOnCancel(t *testing.T) {
	s := NewScheduler(NewClock(time.Millisecond, 5), time.Millisecond, nil)

	var steps atomic.Int64
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := s.Run(ctx, TickHooks{Step: func(float64) { steps.Add(1) }})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run returned %v, want deadline exceeded", err)
	}
	if steps.Load() == 0 {
		t.Error("Expected at least one step")
	}
}
