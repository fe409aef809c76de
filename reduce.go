package braid

// FreeReduceOnce makes one left-to-right pass that removes every
// non-overlapping adjacent (σ_i, σ_i⁻¹) or (σ_i⁻¹, σ_i) cancelling pair it
// finds, and reports whether it changed anything. Pairs that only become
// adjacent after a removal are left for the next pass.
// FreeReduce repeats this to a fixed point.
//
// This is a peephole optimization, not part of Garside normal form: spec.md
// §9 is explicit that free reduction "must not be invoked inside §4.4 or
// §4.6" since it can reorder rewriting work, and Multiply never calls it.
// It is offered as an optional pre-pass for callers who want smaller
// intermediate words (spec.md §9, "left as an optional pre-pass";
// original_source/src/braid/mod.rs free_reduce_once/free_reduce).
func (w *Word) FreeReduceOnce() bool {
	if len(w.Gens) == 0 {
		return false
	}
	changed := false
	out := make([]Generator, 0, len(w.Gens))
	i := 0
	for i < len(w.Gens)-1 {
		a, b := w.Gens[i], w.Gens[i+1]
		if a.Index() == b.Index() && a.IsPositive() != b.IsPositive() {
			changed = true
			i += 2
			continue
		}
		out = append(out, w.Gens[i])
		i++
	}
	if i == len(w.Gens)-1 {
		out = append(out, w.Gens[i])
	}
	w.Gens = out
	return changed
}

// FreeReduce repeatedly applies FreeReduceOnce until no more cancelling
// pairs remain.
func (w *Word) FreeReduce() {
	for w.FreeReduceOnce() {
	}
}
