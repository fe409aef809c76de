package garside

import "github.com/cryptobraid/braidcrypt"

// negPowToPermute computes B_i such that σ_i⁻¹ = Δ⁻¹ · B_i, where B_i is
// the positive permutation braid realizing the permutation (n, n-1, ..., 1)
// with positions i and i+1 swapped (spec.md §4.4 step 3).
func negPowToPermute(i, n int) (*braid.Word, error) {
	perm := make([]int, n)
	for k := 0; k < n; k++ {
		perm[k] = n - k
	}
	// swap positions i, i+1 (1-indexed) i.e. slice indices i-1, i
	perm[i-1], perm[i] = perm[i], perm[i-1]
	return FromArray(perm)
}

// DeltaSlide rewrites an arbitrary word w into (p, w+) such that
// w = Δ^p * w+ as braid group elements, where w+ is positive (spec.md
// §4.4). p is the signed count where each σ_i⁻¹ encountered contributes -1
// (the decrement convention fixed by spec.md §9's resolved open question).
//
// Runs in O(L*n^2) for an input of length L.
func DeltaSlide(w *braid.Word) (int, *braid.Word, error) {
	n := w.N
	final := make([]braidGen, len(w.Gens))
	for i, g := range w.Gens {
		final[i] = braidGen{index: g.Index(), positive: g.IsPositive()}
	}

	p := 0
	cursor := 0
	for cursor < len(final) {
		if final[cursor].positive {
			cursor++
			continue
		}
		i := final[cursor].index
		// remove the inverse generator, splice in B_i's positive word
		replacement, err := negPowToPermute(i, n)
		if err != nil {
			return 0, nil, err
		}
		repl := make([]braidGen, len(replacement.Gens))
		for k, g := range replacement.Gens {
			repl[k] = braidGen{index: g.Index(), positive: true}
		}
		tail := append([]braidGen{}, final[cursor+1:]...)
		final = append(final[:cursor], append(repl, tail...)...)

		// migrate the new Δ^-1 leftward: re-index every generator in the
		// prefix [0, cursor) via the shift automorphism a -> n-a.
		for j := 0; j < cursor; j++ {
			if !final[j].positive {
				return 0, nil, braid.ErrInvariantViolation
			}
			final[j].index = n - final[j].index
		}
		cursor += len(repl)
		p--
	}

	outGens := make([]int, len(final))
	for i, g := range final {
		if !g.positive {
			return 0, nil, braid.ErrInvariantViolation
		}
		outGens[i] = g.index
	}
	word, err := braid.Positive(outGens, n)
	if err != nil {
		return 0, nil, err
	}
	return p, word, nil
}

// braidGen is a private scratch representation used only inside DeltaSlide
// while the word is being spliced in place; it avoids repeatedly
// constructing braid.Generator values (which carry no mutable state) and
// keeps the splice loop's intent explicit.
type braidGen struct {
	index    int
	positive bool
}
