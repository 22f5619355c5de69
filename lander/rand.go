package lander

import "math/rand"

// RandSource provides the randomness used when a run is set up.
type RandSource interface {
	// Intn returns a number in [0, n).
	Intn(n int) int

	// Float64 returns a number in [0, 1).
	Float64() float64
}

// NewRandSource creates a RandSource that always produces the same sequence
// for the same seed.
func NewRandSource(seed int64) RandSource {
	return rand.New(rand.NewSource(seed))
}
