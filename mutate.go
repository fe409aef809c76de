package braid

import "github.com/cryptobraid/braidcrypt/internal/rng"

// InsertMutation inserts σ_v·σ_v⁻¹ at position idx. This is a
// braid-relation-preserving rewrite (spec.md §8, "Random-mutation
// invariance"): it changes the word but not the group element it
// represents, so Garside normal form is invariant under it.
func (w *Word) InsertMutation(idx, v int) {
	pair := []Generator{Pos(v), Neg(v)}
	out := make([]Generator, 0, len(w.Gens)+2)
	out = append(out, w.Gens[:idx]...)
	out = append(out, pair...)
	out = append(out, w.Gens[idx:]...)
	w.Gens = out
}

// SwapMutation exchanges adjacent same-signed generators σ_a·σ_b (or
// σ_a⁻¹·σ_b⁻¹) whenever |a-b| >= 2, the far-commutation relation. It scans
// once, left to right (original_source/src/braid/random.rs swap_mutation).
func (w *Word) SwapMutation() {
	if len(w.Gens) == 0 {
		return
	}
	for idx := 1; idx < len(w.Gens); idx++ {
		prev, curr := w.Gens[idx-1], w.Gens[idx]
		if prev.IsPositive() == curr.IsPositive() {
			a, b := prev.Index(), curr.Index()
			diff := a - b
			if diff < 0 {
				diff = -diff
			}
			if diff > 1 {
				w.Gens[idx-1], w.Gens[idx] = curr, prev
			}
		}
	}
}

// ExchangeMutation rewrites any occurrence of the braid relation
// σ_a·σ_{a+1}·σ_a (or its all-inverse form) to σ_{a+1}·σ_a·σ_{a+1}, scanning
// once left to right (original_source/src/braid/random.rs
// exchange_mutation).
func (w *Word) ExchangeMutation() {
	if len(w.Gens) < 3 {
		return
	}
	for idx := 0; idx < len(w.Gens)-2; idx++ {
		k1, k2, k3 := w.Gens[idx], w.Gens[idx+1], w.Gens[idx+2]
		if k1.IsPositive() != k2.IsPositive() || k2.IsPositive() != k3.IsPositive() {
			continue
		}
		a, b, c := k1.Index(), k2.Index(), k3.Index()
		if a == c && b == a+1 {
			if k1.IsPositive() {
				w.Gens[idx], w.Gens[idx+1], w.Gens[idx+2] = Pos(a+1), Pos(a), Pos(a+1)
			} else {
				w.Gens[idx], w.Gens[idx+1], w.Gens[idx+2] = Neg(a+1), Neg(a), Neg(a+1)
			}
		}
	}
}

// Mutate applies rounds random braid-relation-preserving rewrites to w in
// place, chosen uniformly among InsertMutation, SwapMutation and
// ExchangeMutation. Used to build the obfuscated fixtures spec.md §8's
// "Random-mutation invariance" property exercises; the mutation algorithm
// itself is described only by its invariants in spec.md (an external test
// collaborator) and is supplied here from original_source.
func (w *Word) Mutate(rounds int) {
	for r := 0; r < rounds; r++ {
		switch rng.Range(1, 3) {
		case 1:
			idx := 0
			if len(w.Gens) > 0 {
				idx = rng.IntN(len(w.Gens) + 1)
			}
			v := rng.Range(1, w.N-1)
			w.InsertMutation(idx, v)
		case 2:
			w.SwapMutation()
		default:
			w.ExchangeMutation()
		}
	}
}
