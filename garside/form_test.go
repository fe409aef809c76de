package garside

import (
	"testing"

	"github.com/cryptobraid/braidcrypt"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIdempotent(t *testing.T) {
	w, err := braid.Signed([]int{1, -3, 2, 2, 1}, 4)
	require.NoError(t, err)

	form, err := Normalize(w)
	require.NoError(t, err)

	rebuilt, err := form.Word(4)
	require.NoError(t, err)

	form2, err := Normalize(rebuilt)
	require.NoError(t, err)
	require.True(t, form.Equal(form2))
}

func TestNormalizeInversion(t *testing.T) {
	// w * w^-1 must normalize to the trivial braid Δ^0 with no factors.
	w, err := braid.Signed([]int{1, 2, -1, 3}, 4)
	require.NoError(t, err)
	identity, err := braid.Multiply(w, w.Inverse())
	require.NoError(t, err)

	form, err := Normalize(identity)
	require.NoError(t, err)
	require.Equal(t, 0, form.Delta)
	require.Empty(t, form.Factors)
}

func TestNormalizeAssociativity(t *testing.T) {
	a, err := braid.Signed([]int{1, 2}, 4)
	require.NoError(t, err)
	b, err := braid.Signed([]int{-1, 3}, 4)
	require.NoError(t, err)
	c, err := braid.Signed([]int{2, -3}, 4)
	require.NoError(t, err)

	ab, err := braid.Multiply(a, b)
	require.NoError(t, err)
	abc1, err := braid.Multiply(ab, c)
	require.NoError(t, err)

	bc, err := braid.Multiply(b, c)
	require.NoError(t, err)
	abc2, err := braid.Multiply(a, bc)
	require.NoError(t, err)

	f1, err := Normalize(abc1)
	require.NoError(t, err)
	f2, err := Normalize(abc2)
	require.NoError(t, err)
	require.True(t, f1.Equal(f2))
}

func TestFormStringEmptyFactors(t *testing.T) {
	f := &Form{Delta: 2, Factors: nil}
	require.Equal(t, "[2;]", f.String())
}

func TestFormEqualComparesByValue(t *testing.T) {
	a := &Form{Delta: 1, Factors: nil}
	b := &Form{Delta: 1, Factors: nil}
	require.True(t, a.Equal(b))
}
