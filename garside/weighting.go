package garside

import "github.com/cryptobraid/braidcrypt"

// Weight enforces F(Ai) ⊇ S(Ai+1) across adjacent factors of a
// segmentation, by shifting crossings one generator at a time (spec.md
// §4.6). Any factor that becomes the identity during rewriting is dropped.
// Returns the left-weighted factor list.
func Weight(n int, factors []*braid.Word) ([]*braid.Word, error) {
	factors = append([]*braid.Word{}, factors...)
	maxIterations := (len(factors) + 2) * n * n * 4
	iterations := 0

	i := 0
	for i < len(factors)-1 {
		rewrote := false
		for {
			S, err := StartingSet(factors[i+1])
			if err != nil {
				return nil, err
			}
			F, err := FinishingSet(factors[i])
			if err != nil {
				return nil, err
			}
			if F.IsSupersetOf(S) {
				break
			}
			rewrote = true
			iterations++
			if iterations > maxIterations {
				return nil, braid.ErrWeightingDivergence
			}

			j, ok := F.FirstDifference(S)
			if !ok {
				break
			}

			sigmaJ, err := braid.Positive([]int{j}, n)
			if err != nil {
				return nil, err
			}
			factors[i], err = braid.Multiply(factors[i], sigmaJ)
			if err != nil {
				return nil, err
			}

			initial := make([]int, n)
			for k := range initial {
				initial[k] = k + 1
			}
			initial[j-1], initial[j] = j+1, j

			perm, err := InducedPermutationFrom(factors[i+1], initial)
			if err != nil {
				return nil, err
			}
			factors[i+1], err = FromArray(perm.AsArray())
			if err != nil {
				return nil, err
			}
		}

		isIdentity, err := factorIsIdentity(factors[i+1])
		if err != nil {
			return nil, err
		}
		if isIdentity {
			factors = append(factors[:i+1], factors[i+2:]...)
			rewrote = true
		}

		if rewrote && i > 0 {
			i--
		} else {
			i++
		}
	}
	return factors, nil
}

func factorIsIdentity(w *braid.Word) (bool, error) {
	perm, err := InducedPermutation(w)
	if err != nil {
		return false, err
	}
	return perm.IsIdentity(), nil
}
