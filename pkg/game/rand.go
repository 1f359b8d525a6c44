package game

import "math/rand/v2"

// Rand is the random source a Session draws pieces from.
type Rand interface {
	// IntN returns a uniformly distributed integer in [0, n).
	IntN(n int) int
}

var _ Rand = (*rand.Rand)(nil)

// NewRand returns a deterministic source for the given seed. Equal seeds
// produce equal trays.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}
