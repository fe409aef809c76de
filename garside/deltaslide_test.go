package garside

import (
	"testing"

	"github.com/cryptobraid/braidcrypt"
	"github.com/stretchr/testify/require"
)

func TestDeltaSlideSignedExample(t *testing.T) {
	// signed([1,-3,2], 4) has Delta exponent -1 (spec.md example).
	w, err := braid.Signed([]int{1, -3, 2}, 4)
	require.NoError(t, err)

	p, positiveWord, err := DeltaSlide(w)
	require.NoError(t, err)
	require.Equal(t, -1, p)
	require.True(t, positiveWord.IsPositive())
}

func TestDeltaSlideAlreadyPositive(t *testing.T) {
	w, err := braid.Positive([]int{1, 2, 1}, 3)
	require.NoError(t, err)
	p, positiveWord, err := DeltaSlide(w)
	require.NoError(t, err)
	require.Equal(t, 0, p)
	require.True(t, w.Equal(positiveWord))
}

func TestDeltaSlideHalfTwist(t *testing.T) {
	d := braid.HalfTwist(4)
	p, positiveWord, err := DeltaSlide(d)
	require.NoError(t, err)
	require.Equal(t, 0, p)
	require.True(t, d.Equal(positiveWord))
}

func TestDeltaSlideRoundTrip(t *testing.T) {
	// Δ^-1 · σ1 spelled out has three inverse generators, each contributing
	// -1 to p; decomposing and rebuilding must reproduce the same group
	// element (spec.md §8, "Δ-slide round-trip").
	delta := braid.HalfTwist(3)
	deltaInv := delta.Inverse()
	sigma1, err := braid.Positive([]int{1}, 3)
	require.NoError(t, err)
	w, err := braid.Multiply(deltaInv, sigma1)
	require.NoError(t, err)

	p, positiveWord, err := DeltaSlide(w)
	require.NoError(t, err)
	require.Equal(t, -3, p)

	rebuilt, err := braid.Positive(nil, 3)
	require.NoError(t, err)
	for i := 0; i < -p; i++ {
		rebuilt, err = braid.Multiply(rebuilt, deltaInv)
		require.NoError(t, err)
	}
	rebuilt, err = braid.Multiply(rebuilt, positiveWord)
	require.NoError(t, err)

	f1, err := Normalize(w)
	require.NoError(t, err)
	f2, err := Normalize(rebuilt)
	require.NoError(t, err)
	require.True(t, f1.Equal(f2))
}
