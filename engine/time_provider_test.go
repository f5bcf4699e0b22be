package engine

import (
	"sync"
	"testing"
	"time"
)

func TestSystemTime(t *testing.T) {
	var ts TimeSource = SystemTime{}

	t1 := ts.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := ts.Now()

	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestManualTime(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mt := NewManualTime(startTime)

	if !mt.Now().Equal(startTime) {
		t.Errorf("Now = %v, want %v", mt.Now(), startTime)
	}

	mt.Advance(5 * time.Second)
	if got := mt.Now().Sub(startTime); got != 5*time.Second {
		t.Errorf("Advanced by %v, want 5s", got)
	}

	// Time never moves on its own
	before := mt.Now()
	time.Sleep(time.Millisecond)
	if !mt.Now().Equal(before) {
		t.Error("ManualTime moved without Advance")
	}
}

func TestManualTimeConcurrent(t *testing.T) {
	mt := NewManualTime(time.Unix(0, 0))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				mt.Advance(time.Millisecond)
				_ = mt.Now()
			}
		}()
	}
	wg.Wait()

	if got := mt.Now().Sub(time.Unix(0, 0)); got != 800*time.Millisecond {
		t.Errorf("Total advance = %v, want 800ms", got)
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{StateRunning, "running"},
		{StateGameOver, "game-over"},
		{State(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
