package vmath

import "time"

//go:generate go tool mockgen -destination=./mocks/rand_mock.go -package=mocks . Rand

// Rand is the random source used by the simulation
// Spawn placement, movement capability and aim jitter all draw from it
type Rand interface {
	// Float64 returns a value in [0, 1)
	Float64() float64
	// Intn returns a value in [0, n), 0 when n <= 0
	Intn(n int) int
}

// FastRand is a xorshift64 generator, not safe for concurrent use
type FastRand struct {
	state uint64
}

var _ Rand = (*FastRand)(nil)

// NewFastRand creates a generator; seed 0 is remapped since xorshift sticks at zero
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// NewEntropyRand seeds a generator from the wall clock
func NewEntropyRand() *FastRand {
	return NewFastRand(uint64(time.Now().UnixNano()))
}

// Next advances the generator
func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 uses the top 53 bits for a uniform mantissa
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// RandRange returns a uniform value in [lo, hi)
func RandRange(r Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}
