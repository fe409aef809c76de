// Package garside implements the Garside left normal form pipeline for
// B_n: the permutation<->positive-braid bridge, the Δ-slide decomposition,
// segmentation into permutation factors, the left-weighting engine, and
// the canonical textual form (spec.md §4, components 3-7).
package garside

import (
	"fmt"

	"github.com/cryptobraid/braidcrypt"
	"github.com/cryptobraid/braidcrypt/permutation"
)

// InducedPermutation walks a positive word and returns the permutation it
// induces: the ending array E where E[k] is the strand that ends at
// position k after all crossings in w are applied in order (spec.md §4.2,
// "walking a positive word to obtain its induced permutation").
func InducedPermutation(w *braid.Word) (*permutation.Permutation, error) {
	if !w.IsPositive() {
		return nil, braid.ErrNonPositiveWord
	}
	stringPos := make([]int, w.N)
	for i := range stringPos {
		stringPos[i] = i + 1
	}
	for _, g := range w.Gens {
		a := g.Index()
		stringPos[a-1], stringPos[a] = stringPos[a], stringPos[a-1]
	}
	return permutation.FromArray(stringPos)
}

// InducedPermutationFrom walks a positive word starting from an arbitrary
// initial ending array (rather than the identity), returning the resulting
// permutation. Used by the left-weighting engine to re-derive a factor's
// permutation after pre-swapping two entries of the starting array (spec.md
// §4.6).
func InducedPermutationFrom(w *braid.Word, initial []int) (*permutation.Permutation, error) {
	if !w.IsPositive() {
		return nil, braid.ErrNonPositiveWord
	}
	stringPos := make([]int, len(initial))
	copy(stringPos, initial)
	for _, g := range w.Gens {
		a := g.Index()
		stringPos[a-1], stringPos[a] = stringPos[a], stringPos[a-1]
	}
	return permutation.FromArray(stringPos)
}

// FromArray produces the unique reduced positive word on n = len(v) strands
// realizing the permutation v (given as its ending array), running in
// O(n^2) (spec.md §4.2). It is the canonical, lex-smallest reduced positive
// word for v; segmentation (Segment) and the left-weighting engine rely on
// this specific choice. The decomposition itself lives in package
// permutation (ReducedWordIndices); this just wraps it as a braid.Word.
func FromArray(v []int) (*braid.Word, error) {
	indices, err := permutation.ReducedWordIndices(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", braid.ErrInvalidGenerator, err)
	}
	return braid.Positive(indices, len(v))
}

// StartingSet computes S(A) for a positive word A (spec.md §4.3): the set
// of i in [1, n-1] such that A admits a prefix factorization A = σ_i·A'.
// Operationally, i is in S(A) iff the strands occupying positions i, i+1
// at A's start are adjacent-valued and cross during A.
func StartingSet(w *braid.Word) (*IntSet, error) {
	if !w.IsPositive() {
		return nil, braid.ErrNonPositiveWord
	}
	n := w.N
	stringPos := make([]int, n)
	for i := range stringPos {
		stringPos[i] = i + 1
	}
	res := NewIntSet()
	for _, g := range w.Gens {
		a := g.Index()
		sa, sb := stringPos[a-1], stringPos[a]
		if sa == sb+1 {
			res.Insert(sb)
		} else if sb == sa+1 {
			res.Insert(sa)
		}
		stringPos[a-1], stringPos[a] = sb, sa
	}
	return res, nil
}

// FinishingSet computes F(A) for a positive word A (spec.md §4.3): the set
// of i in [1, n-1] such that A admits a suffix factorization A = A''·σ_i.
// Operationally, walk to the end and report all positions i with
// E[i+1] < E[i].
func FinishingSet(w *braid.Word) (*IntSet, error) {
	if !w.IsPositive() {
		return nil, braid.ErrNonPositiveWord
	}
	n := w.N
	stringPos := make([]int, n)
	for i := range stringPos {
		stringPos[i] = i + 1
	}
	for _, g := range w.Gens {
		a := g.Index()
		stringPos[a-1], stringPos[a] = stringPos[a], stringPos[a-1]
	}
	res := NewIntSet()
	for i := 1; i < n; i++ {
		if stringPos[i] < stringPos[i-1] {
			res.Insert(i)
		}
	}
	return res, nil
}
