package garside

import "github.com/cryptobraid/braidcrypt"

// Segment splits a positive word W into the longest prefix permutation
// braids Q1, Q2, ..., Qk such that W = Q1*Q2*...*Qk and each Qj is a
// maximal prefix permutation braid: the next generator would make some
// strand pair cross twice (spec.md §4.5).
//
// A positive word is a permutation braid iff no two strands cross more
// than once, so the greedy split is both maximal and unique. Runs in O(L)
// for a word of length L.
func Segment(w *braid.Word) ([]*braid.Word, error) {
	if !w.IsPositive() {
		return nil, braid.ErrNonPositiveWord
	}
	n := w.N
	stringPos := make([]int, n)
	for i := range stringPos {
		stringPos[i] = i + 1
	}
	type pair struct{ a, b int }
	crossed := map[pair]bool{}
	var segments []*braid.Word
	var current []int

	unordered := func(x, y int) pair {
		if x < y {
			return pair{x, y}
		}
		return pair{y, x}
	}

	for _, g := range w.Gens {
		s := g.Index()
		a, b := stringPos[s-1], stringPos[s]
		key := unordered(a, b)
		if crossed[key] {
			segWord, err := braid.Positive(current, n)
			if err != nil {
				return nil, err
			}
			segments = append(segments, segWord)
			current = nil
			crossed = map[pair]bool{key: true}
		} else {
			crossed[key] = true
		}
		current = append(current, s)
		stringPos[s-1], stringPos[s] = b, a
	}
	if len(current) != 0 {
		segWord, err := braid.Positive(current, n)
		if err != nil {
			return nil, err
		}
		segments = append(segments, segWord)
	}
	return segments, nil
}
