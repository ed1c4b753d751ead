package nn

import (
	"math/rand"
	"time"
)

// NewRand returns a generator seeded with seed, or with the wall clock when
// seed is zero.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	return rand.New(rand.NewSource(seed))
}

// Uniform fills data with values drawn from U[low, high).
func Uniform(rng *rand.Rand, data []float32, low, high float32) {
	span := high - low
	for i := range data {
		data[i] = low + rng.Float32()*span
	}
}
