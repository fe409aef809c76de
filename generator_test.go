package braid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerator(t *testing.T) {
	g := Pos(3)
	require.Equal(t, 3, g.Index())
	require.True(t, g.IsPositive())
	require.Equal(t, 3, g.Signed())
	require.Equal(t, "σ3", g.String())

	inv := g.Inverse()
	require.False(t, inv.IsPositive())
	require.Equal(t, -3, inv.Signed())
	require.Equal(t, "σ3⁻¹", inv.String())

	require.Equal(t, g, inv.Inverse())
}

func TestNeg(t *testing.T) {
	g := Neg(5)
	require.Equal(t, 5, g.Index())
	require.False(t, g.IsPositive())
	require.Equal(t, -5, g.Signed())
}
