package braid

import "fmt"

// Word is an ordered, finite sequence of Generators together with the
// strand count n it is defined over (spec.md §3, "Braid word"). A Word
// owns its generator slice; permutations derived from it are independent
// copies (see package permutation).
//
// Equality of two Words via Equal is syntactic (same generators, in the
// same order). Equality of the group elements they represent is defined
// by equal canonical forms — see package garside.
type Word struct {
	Gens []Generator
	N    int
}

// Positive builds a word on n strands from a sequence of positive generator
// indices (each in [1, n-1]).
func Positive(indices []int, n int) (*Word, error) {
	gens := make([]Generator, len(indices))
	for k, i := range indices {
		if i < 1 || i > n-1 {
			return nil, fmt.Errorf("%w: index %d out of range [1,%d]", ErrInvalidGenerator, i, n-1)
		}
		gens[k] = Pos(i)
	}
	return &Word{Gens: gens, N: n}, nil
}

// Signed builds a word on n strands from signed generator indices: a
// positive value v emits σ_v, a negative value emits σ_|v|⁻¹. Zero is
// rejected, as is any |v| >= n.
func Signed(indices []int, n int) (*Word, error) {
	gens := make([]Generator, len(indices))
	for k, v := range indices {
		if v == 0 {
			return nil, fmt.Errorf("%w: index 0 is not a valid generator", ErrInvalidGenerator)
		}
		abs := v
		if abs < 0 {
			abs = -abs
		}
		if abs > n-1 {
			return nil, fmt.Errorf("%w: index %d out of range for n=%d", ErrInvalidGenerator, v, n)
		}
		if v < 0 {
			gens[k] = Neg(abs)
		} else {
			gens[k] = Pos(abs)
		}
	}
	return &Word{Gens: gens, N: n}, nil
}

// HalfTwist builds Δ = σ₁·(σ₂σ₁)·(σ₃σ₂σ₁)·… for B_n, the unique positive
// permutation braid whose induced permutation is the reverse (spec.md
// §4.1).
func HalfTwist(n int) *Word {
	var gens []Generator
	for k := 1; k < n; k++ {
		for j := k; j >= 1; j-- {
			gens = append(gens, Pos(j))
		}
	}
	return &Word{Gens: gens, N: n}
}

// Len returns the number of generators in w.
func (w *Word) Len() int { return len(w.Gens) }

// IsPositive reports whether every generator in w is a Pos variant.
func (w *Word) IsPositive() bool {
	for _, g := range w.Gens {
		if !g.IsPositive() {
			return false
		}
	}
	return true
}

// Clone returns an independent owned copy of w.
func (w *Word) Clone() *Word {
	gens := make([]Generator, len(w.Gens))
	copy(gens, w.Gens)
	return &Word{Gens: gens, N: w.N}
}

// Inverse reverses the sequence and flips each generator's sign. It is
// involutive: w.Inverse().Inverse() is syntactically equal to w.
func (w *Word) Inverse() *Word {
	n := len(w.Gens)
	gens := make([]Generator, n)
	for i, g := range w.Gens {
		gens[n-1-i] = g.Inverse()
	}
	return &Word{Gens: gens, N: w.N}
}

// Shift replaces every generator index i with n-i. This realizes the
// automorphism Δ·x·Δ⁻¹ and is used by the Δ-slide decomposition in package
// garside to migrate Δ⁻¹ factors leftward.
func (w *Word) Shift() *Word {
	gens := make([]Generator, len(w.Gens))
	for i, g := range w.Gens {
		shifted := w.N - g.Index()
		if g.IsPositive() {
			gens[i] = Pos(shifted)
		} else {
			gens[i] = Neg(shifted)
		}
	}
	return &Word{Gens: gens, N: w.N}
}

// Multiply concatenates a and b, which must share the same strand count.
// No reduction is performed at the word layer.
func Multiply(a, b *Word) (*Word, error) {
	if a.N != b.N {
		return nil, fmt.Errorf("%w: %d != %d", ErrMismatchedStrands, a.N, b.N)
	}
	gens := make([]Generator, 0, len(a.Gens)+len(b.Gens))
	gens = append(gens, a.Gens...)
	gens = append(gens, b.Gens...)
	return &Word{Gens: gens, N: a.N}, nil
}

// Equal reports whether a and b have the same strand count and generator
// sequence. This is syntactic word equality, not group-element equality.
func (w *Word) Equal(other *Word) bool {
	if w.N != other.N || len(w.Gens) != len(other.Gens) {
		return false
	}
	for i := range w.Gens {
		if w.Gens[i] != other.Gens[i] {
			return false
		}
	}
	return true
}

func (w *Word) String() string {
	s := fmt.Sprintf("B%d[", w.N)
	for i, g := range w.Gens {
		if i > 0 {
			s += " "
		}
		s += g.String()
	}
	return s + "]"
}
