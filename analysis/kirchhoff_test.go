package analysis_test

import (
	"testing"

	"github.com/katalvlaran/labyrinth/analysis"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSpanningTreeCount checks known counts: paths have one tree, the
// 2×n ladders follow 1, 4, 15, 56, and the 3×3 and 4×4 grids have 192 and
// 100352.
func TestSpanningTreeCount(t *testing.T) {
	cases := []struct {
		w, h int
		want float64
	}{
		{1, 1, 1},
		{5, 1, 1},
		{1, 7, 1},
		{2, 2, 4},
		{2, 3, 15},
		{4, 2, 56},
		{3, 3, 192},
		{4, 4, 100352},
	}
	for _, tc := range cases {
		got, err := analysis.SpanningTreeCount(tc.w, tc.h)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%d×%d", tc.w, tc.h)
	}
}

// TestSpanningTreeCount_Errors covers the input guards.
func TestSpanningTreeCount_Errors(t *testing.T) {
	_, err := analysis.SpanningTreeCount(0, 3)
	assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
	_, err = analysis.SpanningTreeCount(21, 20)
	assert.ErrorIs(t, err, analysis.ErrTooLarge)
	_, err = analysis.SpanningTreeCount(2, 1<<62)
	assert.ErrorIs(t, err, analysis.ErrTooLarge)
}

// TestSignature ignores outer openings and tells trees apart.
func TestSignature(t *testing.T) {
	a := buildU(t)
	b := buildU(t)
	assert.Equal(t, analysis.Signature(a), analysis.Signature(b))
	assert.Equal(t, "2210", analysis.Signature(a))

	c, err := maze.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, c.OpenPassage(0, 1, maze.East))
	require.NoError(t, c.OpenPassage(1, 3, maze.South))
	require.NoError(t, c.OpenPassage(3, 2, maze.West))
	assert.Equal(t, "1210", analysis.Signature(c))
}
