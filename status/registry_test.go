package status

import (
	"strings"
	"sync"
	"testing"
)

// TestMetricMapCachedPointer verifies repeated Get returns the same metric
func TestMetricMapCachedPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyKills)
	a.Add(3)
	if b := r.Ints.Get(KeyKills); b != a || b.Load() != 3 {
		t.Errorf("Expected cached pointer with value 3, got %v", b.Load())
	}
	if !r.Ints.Has(KeyKills) || r.Ints.Has(KeyResets) {
		t.Error("Has reports wrong registration state")
	}
}

// TestMetricMapConcurrentGet verifies concurrent first use allocates one metric
func TestMetricMapConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Ints.Get(KeyTicks).Add(1)
		}()
	}
	wg.Wait()

	if r.Ints.Count() != 1 {
		t.Errorf("Count = %d, want 1", r.Ints.Count())
	}
	if got := r.Ints.Get(KeyTicks).Load(); got != 16 {
		t.Errorf("Ticks = %d, want 16", got)
	}
}

// TestRegistryLines verifies formatting and ordering of the overlay lines
func TestRegistryLines(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyKills).Store(2)
	r.Ints.Get(KeyEnemies).Store(5)
	r.Floats.Get(KeyTickRate).Set(59.94)
	r.Bools.Get(KeyPaused).Store(true)
	r.Strings.Get(KeyRunID).Store("abc")

	lines := r.Lines()
	want := []string{
		"sim.enemies: 5",
		"sim.kills: 2",
		"host.tps: 59.9",
		"host.paused: true",
		"sim.run: abc",
	}
	if len(lines) != len(want) {
		t.Fatalf("Lines = %v", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("Line %d = %q, want %q", i, lines[i], want[i])
		}
	}
	if r.TotalCount() != 5 {
		t.Errorf("TotalCount = %d, want 5", r.TotalCount())
	}
}

// TestAtomicStringTruncates verifies long values are cut to MaxStringLen
func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Zero value should read empty")
	}
	s.Store(strings.Repeat("x", MaxStringLen+8))
	if len(s.Load()) != MaxStringLen {
		t.Errorf("Len = %d, want %d", len(s.Load()), MaxStringLen)
	}
}
