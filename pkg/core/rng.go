package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Float64 returns a random value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Chance reports true with the given percentage (0..100).
func (r *RNG) Chance(percent float64) bool {
	if percent <= 0 {
		return false
	}
	return r.r.Float64()*100 < percent
}

// Int63 returns a non-negative random int64, handy for deriving child seeds.
func (r *RNG) Int63() int64 { return r.r.Int64() }

// Pick returns a uniformly chosen element of options.
func Pick[T any](r *RNG, options []T) T {
	var zero T
	if len(options) == 0 {
		return zero
	}
	return options[r.IntN(len(options))]
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
