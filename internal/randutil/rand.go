// Package randutil builds the seedable random sources the engine deals with.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG words are derived from the seed so that equal seeds give equal deals.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seed returns the configured seed when there is one, otherwise a seed taken
// from now. Callers log the result so a run can be replayed.
func Seed(configured *int64, now time.Time) int64 {
	if configured != nil {
		return *configured
	}
	return now.UnixNano()
}

// Split derives n independent generators from one seed, one per worker.
func Split(seed int64, n int) []*rand.Rand {
	out := make([]*rand.Rand, n)
	for i := range out {
		out[i] = New(int64(mix(uint64(seed) + uint64(i+1)*goldenRatio64)))
	}
	return out
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
