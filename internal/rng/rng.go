// Package rng provides the cryptographic randomness oracle spec.md §6
// treats as an external collaborator ("RNG is cryptographic (external
// oracle)"). It is a thin wrapper over crypto/rand: no example repo in the
// retrieved corpus ships a CSPRNG abstraction (gnark's randomness needs are
// satisfied by gnark-crypto's field-element samplers, which aren't a fit
// for plain integer draws; alterx has no randomness need at all), so this
// boundary is served directly by the standard library rather than an
// ecosystem dependency — see DESIGN.md.
package rng

import (
	"crypto/rand"
	"math/big"
)

// IntN returns a uniform random integer in [0, n).
func IntN(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand reading from the OS entropy source failing is not a
		// recoverable condition for a key-agreement primitive.
		panic(err)
	}
	return int(v.Int64())
}

// Range returns a uniform random integer in [lo, hi].
func Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + IntN(hi-lo+1)
}

// Float64 returns a uniform random float64 in [0, 1).
func Float64() float64 {
	const precision = 1 << 53
	return float64(IntN(precision)) / float64(precision)
}
