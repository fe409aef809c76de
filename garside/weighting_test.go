package garside

import (
	"testing"

	"github.com/cryptobraid/braidcrypt"
	"github.com/stretchr/testify/require"
)

func TestWeightProducesLeftWeightedFactors(t *testing.T) {
	w, err := braid.Positive([]int{1, 2, 2, 1, 2}, 3)
	require.NoError(t, err)
	segments, err := Segment(w)
	require.NoError(t, err)

	weighted, err := Weight(3, segments)
	require.NoError(t, err)

	rebuilt, err := braid.Positive(nil, 3)
	require.NoError(t, err)
	for _, f := range weighted {
		rebuilt, err = braid.Multiply(rebuilt, f)
		require.NoError(t, err)
	}
	a, err := Normalize(w)
	require.NoError(t, err)
	b, err := Normalize(rebuilt)
	require.NoError(t, err)
	require.True(t, a.Equal(b))

	for i := 0; i+1 < len(weighted); i++ {
		F, err := FinishingSet(weighted[i])
		require.NoError(t, err)
		S, err := StartingSet(weighted[i+1])
		require.NoError(t, err)
		require.True(t, F.IsSupersetOf(S))
	}
}

func TestWeightAlreadyLeftWeighted(t *testing.T) {
	w, err := braid.Positive([]int{2, 1, 3, 2, 1, 1, 2}, 4)
	require.NoError(t, err)
	segments, err := Segment(w)
	require.NoError(t, err)
	weighted, err := Weight(4, segments)
	require.NoError(t, err)
	require.Equal(t, len(segments), len(weighted))
}
