// Package permutation implements finite permutations of {1..n} as the
// capability described in spec.md §9: identity, transposition, composition,
// position query, twist/identity predicates. The concrete realization here
// is the array view; package garside additionally derives a permutation
// from a positive braid word by walking it (the "braid's induced
// permutation" view), without this package needing to know about braids.
package permutation

import "fmt"

// Permutation is a bijection on {1..n}, stored as its ending array: arr[k-1]
// is the starting label of the strand that ends at position k (spec.md §3,
// view (a)). Pos(x) (view (b), "where does strand x end up") is derived by
// scanning for x.
type Permutation struct {
	arr []int // 1-indexed values, 0-indexed slice
}

// Identity returns the identity permutation of size n.
func Identity(n int) *Permutation {
	arr := make([]int, n)
	for i := range arr {
		arr[i] = i + 1
	}
	return &Permutation{arr: arr}
}

// FromArray wraps v (a permutation of {1..n} given as its ending array) as
// a Permutation. v is copied; the caller retains ownership of the original
// slice. Returns an error if v is not a permutation of {1..len(v)}.
func FromArray(v []int) (*Permutation, error) {
	n := len(v)
	seen := make([]bool, n+1)
	arr := make([]int, n)
	for i, x := range v {
		if x < 1 || x > n || seen[x] {
			return nil, fmt.Errorf("invalid permutation: %v is not a bijection on 1..%d", v, n)
		}
		seen[x] = true
		arr[i] = x
	}
	return &Permutation{arr: arr}, nil
}

// Size returns n.
func (p *Permutation) Size() int { return len(p.arr) }

// AsArray returns a copy of the ending array.
func (p *Permutation) AsArray() []int {
	out := make([]int, len(p.arr))
	copy(out, p.arr)
	return out
}

// StrandAt returns E[k], the starting label of the strand ending at
// position k (1-indexed).
func (p *Permutation) StrandAt(k int) int { return p.arr[k-1] }

// Pos returns the ending position of the strand that starts at x
// (1-indexed), by scanning the ending array for x.
func (p *Permutation) Pos(x int) int {
	for i, v := range p.arr {
		if v == x {
			return i + 1
		}
	}
	panic(fmt.Sprintf("permutation: %d is not a valid strand label for size %d", x, len(p.arr)))
}

// Swap exchanges the strands occupying positions a and b (1-indexed),
// mutating p in place.
func (p *Permutation) Swap(a, b int) {
	p.arr[a-1], p.arr[b-1] = p.arr[b-1], p.arr[a-1]
}

// IsIdentity reports whether p fixes every position.
func (p *Permutation) IsIdentity() bool {
	for i, v := range p.arr {
		if v != i+1 {
			return false
		}
	}
	return true
}

// IsTwist reports whether p is the reversal permutation (pos(i) = n-i+1 for
// all i), i.e. the permutation induced by the half twist Δ.
func (p *Permutation) IsTwist() bool {
	n := len(p.arr)
	for i := 1; i <= n; i++ {
		if p.Pos(i) != n-i+1 {
			return false
		}
	}
	return true
}

// Equal reports whether p and other represent the same bijection.
func (p *Permutation) Equal(other *Permutation) bool {
	if len(p.arr) != len(other.arr) {
		return false
	}
	for i := range p.arr {
		if p.arr[i] != other.arr[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent owned copy of p.
func (p *Permutation) Clone() *Permutation {
	return &Permutation{arr: p.AsArray()}
}

// ReducedWordIndices computes the unique reduced positive word realizing
// the permutation v (given as its ending array) in O(n^2), returning it as
// a flat sequence of generator indices rather than a braid word — this
// package has no notion of braids, only of permutations and their
// canonical positive-generator decomposition (spec.md §4.2). Package
// garside wraps this as a braid.Word (FromArray); package braid uses it
// directly for RandomPositive, since routing that through garside would
// create an import cycle (garside already depends on braid).
//
// Algorithm: maintain a forward table fwd[strand] = current position of
// that strand and an inverse table inv[position] = strand currently there,
// both initialized to identity. For each phase p = 1..n-1, let t = v[p-1]
// be the strand that must land at position p, and s = fwd[t] its current
// position; emit indices s-1, s-2, ..., p (descending), updating fwd/inv
// after each emission. This is the lex-smallest reduced positive word for
// v.
func ReducedWordIndices(v []int) ([]int, error) {
	n := len(v)
	if _, err := FromArray(v); err != nil {
		return nil, err
	}

	fwd := make([]int, n+1)
	inv := make([]int, n+1)
	for i := 1; i <= n; i++ {
		fwd[i] = i
		inv[i] = i
	}

	doSwap := func(pos int) {
		a := inv[pos]
		b := inv[pos+1]
		inv[pos], inv[pos+1] = b, a
		fwd[a], fwd[b] = pos+1, pos
	}

	var indices []int
	for phase := 1; phase < n; phase++ {
		target := v[phase-1]
		source := fwd[target]
		for pos := source - 1; pos >= phase; pos-- {
			doSwap(pos)
			indices = append(indices, pos)
		}
	}
	return indices, nil
}

// Compose returns the permutation obtained by applying p then second:
// result.Pos(x) = second.Pos(p.Pos(x)).
func (p *Permutation) Compose(second *Permutation) (*Permutation, error) {
	if p.Size() != second.Size() {
		return nil, fmt.Errorf("permutation: mismatched sizes %d != %d", p.Size(), second.Size())
	}
	n := p.Size()
	res := make([]int, n)
	for strand := 1; strand <= n; strand++ {
		afterFirst := p.Pos(strand)
		resultPlace := second.Pos(afterFirst)
		res[resultPlace-1] = strand
	}
	return &Permutation{arr: res}, nil
}
