// Package randutil builds the explicit random sources threaded through the
// deck and the bots. Nothing in this module reads process-wide random state.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Equal seeds yield equal sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Derive returns an independent stream for a sub-component (e.g. bot n of a
// session) so that adding a consumer does not shift the others' sequences.
func Derive(seed int64, stream uint64) *rand.Rand {
	return New(int64(mix(uint64(seed) ^ mix(stream+goldenRatio64))))
}

// DeriveSeed returns a non-zero seed for sub-run n of a batch seeded with
// seed. It is never 0, so the result is never replaced by a clock seed.
func DeriveSeed(seed int64, n uint64) int64 {
	s := int64(mix(uint64(seed)^mix(n+goldenRatio64)) >> 1)
	if s == 0 {
		return 1
	}
	return s
}

// Seed returns seed unchanged when non-zero, otherwise a clock-derived seed.
// Zero means "unseeded" in configuration and on the command line.
func Seed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
