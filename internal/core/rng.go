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

// Inclusive returns a uniform value in [0, max]. A non-positive max always
// yields 0.
func (r *RNG) Inclusive(max int) int {
	if max <= 0 {
		return 0
	}
	return r.r.IntN(max + 1)
}
