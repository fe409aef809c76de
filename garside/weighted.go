package garside

import "github.com/cryptobraid/braidcrypt"

// IsLeftWeighted reports whether a positive word is already left-weighted
// once segmented: F(Ai) ⊇ S(Ai+1) for every consecutive pair of its
// permutation factors (spec.md §4.6, used directly by spec.md §8 scenarios
// 2 and 3).
func IsLeftWeighted(w *braid.Word) (bool, error) {
	segments, err := Segment(w)
	if err != nil {
		return false, err
	}
	for i := 0; i < len(segments)-1; i++ {
		F, err := FinishingSet(segments[i])
		if err != nil {
			return false, err
		}
		S, err := StartingSet(segments[i+1])
		if err != nil {
			return false, err
		}
		if !F.IsSupersetOf(S) {
			return false, nil
		}
	}
	return true, nil
}
