package braid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPositive(t *testing.T) {
	w, err := Positive([]int{1, 2, 1}, 4)
	require.NoError(t, err)
	require.Equal(t, 3, w.Len())
	require.True(t, w.IsPositive())

	_, err = Positive([]int{0}, 4)
	require.ErrorIs(t, err, ErrInvalidGenerator)

	_, err = Positive([]int{4}, 4)
	require.ErrorIs(t, err, ErrInvalidGenerator)
}

func TestSigned(t *testing.T) {
	w, err := Signed([]int{1, -3, 2}, 4)
	require.NoError(t, err)
	require.Equal(t, 3, w.Len())
	require.False(t, w.IsPositive())
	require.Equal(t, -3, w.Gens[1].Signed())

	_, err = Signed([]int{0}, 4)
	require.ErrorIs(t, err, ErrInvalidGenerator)

	_, err = Signed([]int{4}, 4)
	require.ErrorIs(t, err, ErrInvalidGenerator)
}

func TestHalfTwist(t *testing.T) {
	d := HalfTwist(3)
	require.Equal(t, 3, d.Len())
	require.True(t, d.IsPositive())
	require.Equal(t, []int{1, 2, 1}, signedSlice(d))
}

func TestWordInverse(t *testing.T) {
	w, err := Signed([]int{1, -2, 3}, 4)
	require.NoError(t, err)
	inv := w.Inverse()
	require.Equal(t, []int{-3, 2, -1}, signedSlice(inv))
	require.True(t, w.Equal(inv.Inverse()))
}

func TestWordShift(t *testing.T) {
	w, err := Positive([]int{1, 2}, 4)
	require.NoError(t, err)
	shifted := w.Shift()
	require.Equal(t, []int{3, 2}, signedSlice(shifted))
}

func TestMultiply(t *testing.T) {
	a, _ := Positive([]int{1}, 4)
	b, _ := Positive([]int{2}, 4)
	combined, err := Multiply(a, b)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, signedSlice(combined))

	c, _ := Positive([]int{1}, 5)
	_, err = Multiply(a, c)
	require.ErrorIs(t, err, ErrMismatchedStrands)
}

func TestWordEqual(t *testing.T) {
	a, _ := Positive([]int{1, 2}, 4)
	b, _ := Positive([]int{1, 2}, 4)
	c, _ := Positive([]int{2, 1}, 4)
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func signedSlice(w *Word) []int {
	out := make([]int, w.Len())
	for i, g := range w.Gens {
		out[i] = g.Signed()
	}
	return out
}
