package braid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertMutationSplicesCancelingPair(t *testing.T) {
	w, err := Signed([]int{1, 2}, 4)
	require.NoError(t, err)
	mutated := w.Clone()
	mutated.InsertMutation(1, 3)
	require.Equal(t, w.Len()+2, mutated.Len())
	require.Equal(t, []int{1, 3, -3, 2}, signedSlice(mutated))
}

func TestSwapMutationFarCommutation(t *testing.T) {
	w, err := Positive([]int{1, 3}, 5)
	require.NoError(t, err)
	w.SwapMutation()
	require.Equal(t, []int{3, 1}, signedSlice(w))
}

func TestSwapMutationLeavesAdjacentAlone(t *testing.T) {
	w, err := Positive([]int{1, 2}, 5)
	require.NoError(t, err)
	w.SwapMutation()
	require.Equal(t, []int{1, 2}, signedSlice(w))
}

func TestExchangeMutation(t *testing.T) {
	w, err := Positive([]int{1, 2, 1}, 4)
	require.NoError(t, err)
	w.ExchangeMutation()
	require.Equal(t, []int{2, 1, 2}, signedSlice(w))
}

func TestMutateKeepsStrandCount(t *testing.T) {
	w, err := Signed([]int{1, 2, -1}, 5)
	require.NoError(t, err)
	w.Mutate(10)
	require.Equal(t, 5, w.N)
}
