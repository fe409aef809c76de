package braid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomPositive(t *testing.T) {
	w, err := RandomPositive(5, 4, 6, 0.3)
	require.NoError(t, err)
	require.Equal(t, 5, w.N)
	require.True(t, w.IsPositive())
}

func TestRandomPositiveDeterministicShape(t *testing.T) {
	// With zero permutations composed in, the result is the trivial word.
	w, err := RandomPositive(4, 0, 3, 0.5)
	require.NoError(t, err)
	require.Equal(t, 0, w.Len())
}
