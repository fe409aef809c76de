package braid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFreeReduceOnce(t *testing.T) {
	w, err := Signed([]int{1, 2, -2, 3}, 4)
	require.NoError(t, err)
	changed := w.FreeReduceOnce()
	require.True(t, changed)
	require.Equal(t, []int{1, 3}, signedSlice(w))
}

func TestFreeReduceFixedPoint(t *testing.T) {
	w, err := Signed([]int{1, 2, -2, -1}, 4)
	require.NoError(t, err)
	w.FreeReduce()
	require.Equal(t, 0, w.Len())
}

func TestFreeReduceNoCancellation(t *testing.T) {
	w, err := Signed([]int{1, 2, 3}, 4)
	require.NoError(t, err)
	changed := w.FreeReduceOnce()
	require.False(t, changed)
	require.Equal(t, []int{1, 2, 3}, signedSlice(w))
}
