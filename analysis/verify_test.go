package analysis_test

import (
	"testing"

	"github.com/katalvlaran/labyrinth/analysis"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildU carves the 2×2 "U" maze by hand:
//
//	in ┃ ┃ out
//	   ┗━┛
func buildU(t *testing.T) *maze.Grid {
	t.Helper()
	g, err := maze.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.SetEntrance(maze.Point{X: 0, Y: 0}))
	require.NoError(t, g.SetExit(maze.Point{X: 1, Y: 0}))
	require.NoError(t, g.OpenPassage(0, 2, maze.South))
	require.NoError(t, g.OpenPassage(2, 3, maze.East))
	require.NoError(t, g.OpenPassage(3, 1, maze.North))
	_, err = g.OpenBoundary(0)
	require.NoError(t, err)
	_, err = g.OpenBoundary(1)
	require.NoError(t, err)
	return g
}

// fromCells builds a grid from raw cells and designates entrance/exit.
func fromCells(t *testing.T, w, h int, cells []maze.Cell, in, out maze.Point) *maze.Grid {
	t.Helper()
	g, err := maze.FromCells(w, h, cells)
	require.NoError(t, err)
	require.NoError(t, g.SetEntrance(in))
	require.NoError(t, g.SetExit(out))
	return g
}

// TestVerify_Valid accepts a hand-carved perfect maze.
func TestVerify_Valid(t *testing.T) {
	assert.NoError(t, analysis.Verify(buildU(t)))
}

// TestVerify_Failures builds one defective grid per sentinel.
func TestVerify_Failures(t *testing.T) {
	const (
		N = maze.Cell(0x01)
		E = maze.Cell(0x02)
		S = maze.Cell(0x04)
		W = maze.Cell(0x08)
	)
	origin, right := maze.Point{X: 0, Y: 0}, maze.Point{X: 1, Y: 0}

	cases := []struct {
		name  string
		w, h  int
		cells []maze.Cell
		in    maze.Point
		out   maze.Point
		err   error
	}{
		{
			// (0,0) opens East but (1,0) does not open West.
			name: "OneWay", w: 2, h: 1,
			cells: []maze.Cell{W | E, E},
			in:    origin, out: right,
			err: analysis.ErrAsymmetric,
		},
		{
			// Every wall of a 2×2 block removed: a 4-cycle.
			name: "Cycle", w: 2, h: 2,
			cells: []maze.Cell{W | E | S, E | S | W, N | E, N | W},
			in:    origin, out: right,
			err: analysis.ErrEdgeCount,
		},
		{
			// 3×2: cycle over the left 2×2 block plus an isolated 2–5 pair.
			name: "Disconnected", w: 3, h: 2,
			cells: []maze.Cell{W | E | S, W | S, S | E, N | E, N | W, N},
			in:    origin, out: maze.Point{X: 2, Y: 0},
			err: analysis.ErrDisconnected,
		},
		{
			// Outer opening on a cell that is neither entrance nor exit.
			name: "StrayOpening", w: 3, h: 1,
			cells: []maze.Cell{W | E, E | W | S, W | E},
			in:    origin, out: maze.Point{X: 2, Y: 0},
			err: analysis.ErrBoundary,
		},
		{
			// Exit designated but never opened.
			name: "MissingExit", w: 2, h: 1,
			cells: []maze.Cell{W | E, W},
			in:    origin, out: right,
			err: analysis.ErrBoundary,
		},
		{
			// Entrance opened North although the tie-break picks West.
			name: "WrongSide", w: 2, h: 1,
			cells: []maze.Cell{N | E, W | E},
			in:    origin, out: right,
			err: analysis.ErrBoundary,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := fromCells(t, tc.w, tc.h, tc.cells, tc.in, tc.out)
			assert.ErrorIs(t, analysis.Verify(g), tc.err)
		})
	}
}

// TestVerify_SharedPortal accepts a 1×1 maze whose entrance is its exit.
func TestVerify_SharedPortal(t *testing.T) {
	g := fromCells(t, 1, 1, []maze.Cell{0x08}, maze.Point{}, maze.Point{})
	assert.NoError(t, analysis.Verify(g))
}
