package analysis_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/labyrinth/analysis"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompute_U classifies the four corridor cells of the "U" maze.
func TestCompute_U(t *testing.T) {
	s := analysis.Compute(buildU(t))
	assert.Equal(t, analysis.Stats{Total: 4, Corridors: 4}, s)
	assert.InDelta(t, 100.0, s.Percent(s.Corridors), 1e-9)
}

// TestCompute_Mixed covers every class on a plus-shaped 3×3 maze.
func TestCompute_Mixed(t *testing.T) {
	g, err := maze.New(3, 3)
	require.NoError(t, err)
	require.NoError(t, g.SetEntrance(maze.Point{X: 0, Y: 1}))
	require.NoError(t, g.SetExit(maze.Point{X: 0, Y: 1}))
	// Centre 4 reaches all four arms; the arms 1 and 7 spread sideways.
	require.NoError(t, g.OpenPassage(4, 1, maze.North))
	require.NoError(t, g.OpenPassage(4, 5, maze.East))
	require.NoError(t, g.OpenPassage(4, 7, maze.South))
	require.NoError(t, g.OpenPassage(4, 3, maze.West))
	require.NoError(t, g.OpenPassage(1, 0, maze.West))
	require.NoError(t, g.OpenPassage(1, 2, maze.East))
	require.NoError(t, g.OpenPassage(7, 6, maze.West))
	require.NoError(t, g.OpenPassage(7, 8, maze.East))
	_, err = g.OpenBoundary(3)
	require.NoError(t, err)
	require.NoError(t, analysis.Verify(g))

	s := analysis.Compute(g)
	// 0,2,5,6,8 dead-ends; 3 corridor (east + west opening); 1,7 junctions; 4 crossroads.
	assert.Equal(t, analysis.Stats{Total: 9, DeadEnds: 5, Corridors: 1, Junctions: 2, Crossroads: 1}, s)
}

// TestStats_WriteTo checks the table layout.
func TestStats_WriteTo(t *testing.T) {
	s := analysis.Stats{Total: 8, DeadEnds: 2, Corridors: 4, Junctions: 1, Crossroads: 1}
	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	require.NoError(t, err)

	want := "Feature   |Count|Percent\n" +
		"Total     |    8|100.000\n" +
		"Dead-Ends |    2| 25.000\n" +
		"Corridors |    4| 50.000\n" +
		"Junctions |    1| 12.500\n" +
		"Crossroads|    1| 12.500\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, int64(len(want)), n)
	assert.Zero(t, analysis.Stats{}.Percent(3))
}
