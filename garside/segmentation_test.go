package garside

import (
	"testing"

	"github.com/cryptobraid/braidcrypt"
	"github.com/stretchr/testify/require"
)

func TestSegmentTwoSegments(t *testing.T) {
	w, err := braid.Positive([]int{1, 2, 2, 1, 2}, 3)
	require.NoError(t, err)
	segments, err := Segment(w)
	require.NoError(t, err)
	require.Len(t, segments, 2)

	weighted, err := IsLeftWeighted(w)
	require.NoError(t, err)
	require.False(t, weighted)
}

func TestSegmentAlreadyWeighted(t *testing.T) {
	w, err := braid.Positive([]int{2, 1, 3, 2, 1, 1, 2}, 4)
	require.NoError(t, err)
	weighted, err := IsLeftWeighted(w)
	require.NoError(t, err)
	require.True(t, weighted)
}

func TestSegmentRejectsSignedWord(t *testing.T) {
	w, err := braid.Signed([]int{1, -2}, 3)
	require.NoError(t, err)
	_, err = Segment(w)
	require.ErrorIs(t, err, braid.ErrNonPositiveWord)
}

func TestSegmentRecombines(t *testing.T) {
	w, err := braid.Positive([]int{1, 2, 2, 1, 2}, 3)
	require.NoError(t, err)
	segments, err := Segment(w)
	require.NoError(t, err)

	combined, err := braid.Positive(nil, 3)
	require.NoError(t, err)
	for _, seg := range segments {
		combined, err = braid.Multiply(combined, seg)
		require.NoError(t, err)
	}
	require.True(t, combined.Equal(w))
}
