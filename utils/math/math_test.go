package math

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiv(t *testing.T) {
	require.Equal(t, 3, DivCeil(7, 3))
	require.Equal(t, 2, DivCeil(6, 3))
	require.Equal(t, 2, DivFloor(7, 3))
	require.Equal(t, uint64(4), DivCeil[uint64](13, 4))
}

func TestLog2(t *testing.T) {
	cases := []struct {
		n     int
		floor int
		ceil  int
	}{
		{0, 0, 0},
		{1, 0, 0},
		{2, 1, 1},
		{3, 1, 2},
		{4, 2, 2},
		{5, 2, 3},
		{1023, 9, 10},
		{1024, 10, 10},
		{1025, 10, 11},
	}
	for _, c := range cases {
		require.Equal(t, c.floor, Log2Floor(c.n), "floor n=%d", c.n)
		require.Equal(t, c.ceil, Log2Ceil(c.n), "ceil n=%d", c.n)
	}
	require.Equal(t, 7, Max(3, 7))
	require.Equal(t, "b", Max("a", "b"))
}
