package mem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArena_loadStore(t *testing.T) {
	a := NewArena(8)
	require.Equal(t, uint(8), a.Size())

	val, err := a.Load(3)
	require.NoError(t, err)
	require.Equal(t, 0, val, "fresh arena reads back zero")

	require.NoError(t, a.Store(3, 42))
	val, err = a.Load(3)
	require.NoError(t, err)
	require.Equal(t, 42, val)
}

func TestArena_bounds(t *testing.T) {
	a := NewArena(4)

	_, err := a.Load(4)
	require.Error(t, err)
	var lim LimitError
	require.ErrorAs(t, err, &lim)
	require.Equal(t, uint(4), lim.Addr)
	require.Equal(t, uint(4), lim.Size)

	err = a.Store(10, 1)
	require.Error(t, err)
	require.ErrorAs(t, err, &lim)
	require.Equal(t, "store", lim.Op)
}
