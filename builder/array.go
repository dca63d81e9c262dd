package builder

import (
	"fmt"
	"math/rand"
)

// RandomArray returns n values drawn uniformly from 1..max with a generator
// seeded by seed. Equal arguments always yield equal arrays.
//
// Errors: ErrBadSize if n < 0 or max < 1.
func RandomArray(n int, max int64, seed int64) ([]int64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d < 0: %w", MethodRandomArray, n, ErrBadSize)
	}
	if max < 1 {
		return nil, fmt.Errorf("%s: max=%d < 1: %w", MethodRandomArray, max, ErrBadSize)
	}
	rng := rand.New(rand.NewSource(seed))
	out := make([]int64, n)
	for i := range out {
		out[i] = 1 + rng.Int63n(max)
	}

	return out, nil
}
