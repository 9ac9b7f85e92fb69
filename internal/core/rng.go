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
func NewTimeRNG() *RNG { return NewRNG(time.Now().UnixNano()) }

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// FillThreshold sets each cell alive when a uniform draw exceeds threshold.
func FillThreshold(r *RNG, buf []uint8, threshold float64) {
	for i := range buf {
		if r.Float64() > threshold {
			buf[i] = Alive
			continue
		}
		buf[i] = Dead
	}
}
