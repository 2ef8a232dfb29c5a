package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxDimensions(t *testing.T) {
	cases := []struct {
		size, width, height int
	}{
		{4, 2, 2},
		{6, 3, 2},
		{9, 3, 3},
	}
	for _, tc := range cases {
		w, h, err := BoxDimensions(tc.size)
		require.NoError(t, err)
		assert.Equal(t, tc.width, w)
		assert.Equal(t, tc.height, h)
	}

	for _, size := range []int{0, 5, 12, 16} {
		_, _, err := BoxDimensions(size)
		assert.ErrorIs(t, err, ErrUnsupportedSize, "size %d", size)
	}
}

func TestBoxOf(t *testing.T) {
	// 6×6 boxes are 2 rows by 3 columns.
	br, bc, err := BoxOf(3, 4, 6)
	require.NoError(t, err)
	assert.Equal(t, 1, br)
	assert.Equal(t, 1, bc)

	_, _, err = BoxOf(0, 0, 5)
	assert.ErrorIs(t, err, ErrUnsupportedSize)
}

func TestNewGridBuildsBoxRegions(t *testing.T) {
	g, err := NewGrid(6, Classic)
	require.NoError(t, err)

	require.Len(t, g.Regions, 6)
	for _, region := range g.Regions {
		assert.Len(t, region, 6)
	}

	// (0,0) and (1,2) share the top-left 2×3 box; (0,3) does not.
	assert.Equal(t, g.RegionIndex(0), g.RegionIndex(1*6+2))
	assert.NotEqual(t, g.RegionIndex(0), g.RegionIndex(3))
}

func TestRegionIndexCacheInvalidation(t *testing.T) {
	g, err := NewGrid(4, Classic)
	require.NoError(t, err)

	first := g.RegionIndex(5)
	g.SetRegions([][]int{
		{0, 1, 2, 3}, {4, 5, 6, 7}, {8, 9, 10, 11}, {12, 13, 14, 15},
	})
	assert.Equal(t, 1, g.RegionIndex(5))
	assert.NotEqual(t, first, g.RegionIndex(7))
}

func TestSymbolRoundTrip(t *testing.T) {
	g, err := NewGrid(4, Alphabet)
	require.NoError(t, err)
	g.Symbols = []string{"A", "B", "C", "D"}

	assert.Equal(t, "C", g.SymbolFor(3))
	assert.Equal(t, "", g.SymbolFor(0))

	v, ok := g.ValueOf("D")
	require.True(t, ok)
	assert.Equal(t, 4, v)

	_, ok = g.ValueOf("Z")
	assert.False(t, ok, "out-of-alphabet symbol must be rejected")
}

func TestValueOfNumeric(t *testing.T) {
	g, err := NewGrid(9, Classic)
	require.NoError(t, err)

	v, ok := g.ValueOf("7")
	require.True(t, ok)
	assert.Equal(t, 7, v)

	for _, s := range []string{"0", "10", "x", "", "7x", " 7"} {
		_, ok := g.ValueOf(s)
		assert.False(t, ok, "symbol %q", s)
	}
}

func TestValidateShape(t *testing.T) {
	g, err := NewGrid(4, Classic)
	require.NoError(t, err)
	require.NoError(t, g.ValidateShape())

	bad := &Grid{Size: 5}
	assert.ErrorIs(t, bad.ValidateShape(), ErrUnsupportedSize)

	g, err = NewGrid(4, Windoku)
	require.NoError(t, err)
	g.Windows = [][]int{{0, 1, 4, 16}}
	assert.Error(t, g.ValidateShape(), "window cell outside the board")

	g, err = NewGrid(4, Asterisk)
	require.NoError(t, err)
	g.AsteriskCells = []int{-1}
	assert.Error(t, g.ValidateShape())

	g, err = NewGrid(4, EvenOdd)
	require.NoError(t, err)
	g.EvenMask = [][]bool{{true, false}}
	assert.Error(t, g.ValidateShape(), "mask must be 4×4")

	g, err = NewGrid(4, Consecutive)
	require.NoError(t, err)
	g.HMarks = make([][]bool, 4)
	for i := range g.HMarks {
		g.HMarks[i] = make([]bool, 4) // one column too many
	}
	assert.Error(t, g.ValidateShape())
}
