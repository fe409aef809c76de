package braid

import (
	"github.com/cryptobraid/braidcrypt/internal/rng"
	"github.com/cryptobraid/braidcrypt/permutation"
)

// RandomPositive builds a random positive braid on n strands by composing
// numPerms random permutation braids. Each one is built from up to
// complexity random adjacent-position swaps applied to an identity
// permutation, where each individual swap is independently skipped with
// probability missRate (spec.md §6; original_source/src/braid/random.rs
// random_permutation/random_positive). Randomness is drawn from the
// cryptographic oracle in internal/rng.
func RandomPositive(n, numPerms, complexity int, missRate float64) (*Word, error) {
	result, err := Positive(nil, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < numPerms; i++ {
		arr := make([]int, n)
		for k := range arr {
			arr[k] = k + 1
		}
		for c := 0; c < complexity; c++ {
			if rng.Float64() < missRate || n < 2 {
				continue
			}
			a := rng.Range(1, n-1)
			arr[a-1], arr[a] = arr[a], arr[a-1]
		}
		indices, err := permutation.ReducedWordIndices(arr)
		if err != nil {
			return nil, err
		}
		factor, err := Positive(indices, n)
		if err != nil {
			return nil, err
		}
		result, err = Multiply(result, factor)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
