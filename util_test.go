package braid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetAllVars(t *testing.T) {
	require.Equal(t, []string{"delta", "factors"}, getAllVars("{{delta}}-{{factors}}"))
}

func TestCheckFormat(t *testing.T) {
	require.NoError(t, CheckFormat("p={{delta}} f={{factors}} c={{canonical}}"))
	require.Error(t, CheckFormat("{{unknown}}"))
}

func TestReplace(t *testing.T) {
	out := Replace("delta={{delta}}", map[string]interface{}{"delta": 3})
	require.Equal(t, "delta=3", out)
}

func TestUnsafeToBytes(t *testing.T) {
	require.Equal(t, []byte("hello"), unsafeToBytes("hello"))
}
