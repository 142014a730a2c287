package core

import (
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewTimeRNG seeds an RNG from the wall clock.
func NewTimeRNG() *RNG {
	return NewRNG(time.Now().UnixNano())
}

// FillDensity sets each cell to 1 with probability p and 0 otherwise.
// p <= 0 clears the buffer and p >= 1 fills it without consulting r.
func FillDensity(r *rand.Rand, buf []uint8, p float64) {
	switch {
	case p <= 0:
		clear(buf)
		return
	case p >= 1:
		for i := range buf {
			buf[i] = 1
		}
		return
	}
	for i := range buf {
		buf[i] = 0
		if r.Float64() < p {
			buf[i] = 1
		}
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
