package vmath

import "testing"

// TestFastRandDeterministic verifies equal seeds produce equal sequences
func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("Sequences diverged at step %d", i)
		}
	}
}

// TestFastRandZeroSeed verifies a zero seed does not lock the generator
func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Error("Zero seed produced zero output")
	}
}

// TestFastRandRanges verifies Float64, Intn and RandRange stay in range
func TestFastRandRanges(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 10000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %v", f)
		}
		n := r.Intn(5)
		if n < 0 || n >= 5 {
			t.Fatalf("Intn out of range: %v", n)
		}
		v := RandRange(r, -0.1, 0.1)
		if v < -0.1 || v >= 0.1 {
			t.Fatalf("RandRange out of range: %v", v)
		}
	}

	if r.Intn(0) != 0 || r.Intn(-3) != 0 {
		t.Error("Intn must return 0 for non-positive n")
	}
	if RandRange(r, 5, 5) != 5 {
		t.Error("RandRange with empty interval must return lo")
	}
}
