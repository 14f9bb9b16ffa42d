package maze_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/labyrinth/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// New and bounds
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects degenerate or oversized grids.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
	}{
		{"ZeroWidth", 0, 3},
		{"ZeroHeight", 3, 0},
		{"Negative", -1, 4},
		{"Overflow", math.MaxInt, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := maze.New(tc.width, tc.height)
			if !errors.Is(err, maze.ErrInvalidDimensions) {
				t.Errorf("New(%d,%d) error = %v; want ErrInvalidDimensions", tc.width, tc.height, err)
			}
			assert.Nil(t, g)
		})
	}
}

// TestNew_Fresh checks the initial state of a grid.
func TestNew_Fresh(t *testing.T) {
	g, err := maze.New(4, 3)
	require.NoError(t, err)

	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 12, g.Len())
	assert.True(t, g.Fresh())
	assert.Zero(t, g.PassageCount())
	assert.Equal(t, -1, g.EntranceIndex())
	assert.Equal(t, -1, g.ExitIndex())

	_, ok := g.Entrance()
	assert.False(t, ok)
	_, ok = g.Exit()
	assert.False(t, ok)
}

// TestIndexCoordinate round-trips every cell of a 5×3 grid and checks the
// row-major layout.
func TestIndexCoordinate(t *testing.T) {
	g, err := maze.New(5, 3)
	require.NoError(t, err)

	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			i, err := g.Index(x, y)
			require.NoError(t, err)
			assert.Equal(t, y*5+x, i)

			p, err := g.Coordinate(i)
			require.NoError(t, err)
			assert.Equal(t, maze.Point{X: x, Y: y}, p)
		}
	}
}

// TestCheckedAccess_OutOfBounds ensures every checked accessor refuses
// coordinates and indices outside the grid.
func TestCheckedAccess_OutOfBounds(t *testing.T) {
	g, err := maze.New(3, 2)
	require.NoError(t, err)

	invalid := [][2]int{{-1, 0}, {3, 0}, {0, 2}, {2, -1}}
	for _, xy := range invalid {
		_, err := g.Index(xy[0], xy[1])
		assert.ErrorIs(t, err, maze.ErrOutOfBounds, "Index(%d,%d)", xy[0], xy[1])
		_, err = g.CellAt(xy[0], xy[1])
		assert.ErrorIs(t, err, maze.ErrOutOfBounds, "CellAt(%d,%d)", xy[0], xy[1])
		assert.False(t, g.InBounds(xy[0], xy[1]))
	}

	for _, i := range []int{-1, 6, 100} {
		_, err := g.Coordinate(i)
		assert.ErrorIs(t, err, maze.ErrOutOfBounds)
		_, err = g.CellByIndex(i)
		assert.ErrorIs(t, err, maze.ErrOutOfBounds)
		_, ok := g.Neighbor(i, maze.North)
		assert.False(t, ok)
	}
}

//----------------------------------------------------------------------------//
// Neighbor
//----------------------------------------------------------------------------//

// TestNeighbor checks edge detection on a 3×3 grid:
//
//	0 1 2
//	3 4 5
//	6 7 8
func TestNeighbor(t *testing.T) {
	g, err := maze.New(3, 3)
	require.NoError(t, err)

	cases := []struct {
		cell int
		dir  maze.Direction
		want int
		ok   bool
	}{
		{4, maze.North, 1, true},
		{4, maze.East, 5, true},
		{4, maze.South, 7, true},
		{4, maze.West, 3, true},
		{0, maze.North, -1, false},
		{0, maze.West, -1, false},
		{2, maze.East, -1, false},
		{8, maze.South, -1, false},
		{6, maze.East, 7, true},
		{5, maze.East, -1, false},
		{3, maze.West, -1, false},
	}
	for _, tc := range cases {
		got, ok := g.Neighbor(tc.cell, tc.dir)
		assert.Equal(t, tc.ok, ok, "Neighbor(%d,%v) ok", tc.cell, tc.dir)
		assert.Equal(t, tc.want, got, "Neighbor(%d,%v)", tc.cell, tc.dir)
	}
}

//----------------------------------------------------------------------------//
// Entrance / exit
//----------------------------------------------------------------------------//

// TestSetEntranceExit covers border validation and the entrance==exit policy.
func TestSetEntranceExit(t *testing.T) {
	g, err := maze.New(4, 4)
	require.NoError(t, err)

	assert.ErrorIs(t, g.SetEntrance(maze.Point{X: 1, Y: 1}), maze.ErrNotOnBorder)
	assert.ErrorIs(t, g.SetExit(maze.Point{X: 4, Y: 0}), maze.ErrOutOfBounds)

	require.NoError(t, g.SetEntrance(maze.Point{X: 0, Y: 1}))
	require.NoError(t, g.SetExit(maze.Point{X: 0, Y: 1}))

	in, ok := g.Entrance()
	require.True(t, ok)
	out, ok := g.Exit()
	require.True(t, ok)
	assert.Equal(t, in, out)
	assert.Equal(t, 4, g.EntranceIndex())
	assert.Equal(t, 4, g.ExitIndex())
}

// TestIsBorder walks every cell of a 4×3 grid.
func TestIsBorder(t *testing.T) {
	g, err := maze.New(4, 3)
	require.NoError(t, err)

	interior := map[maze.Point]bool{{X: 1, Y: 1}: true, {X: 2, Y: 1}: true}
	for p := range g.All() {
		assert.Equal(t, !interior[p], g.IsBorder(p), "IsBorder(%v)", p)
	}
	assert.False(t, g.IsBorder(maze.Point{X: -1, Y: 0}))
}

//----------------------------------------------------------------------------//
// Copies
//----------------------------------------------------------------------------//

// TestCellsAndClone checks that Cells and Clone return independent copies
// and that Reset keeps the designations.
func TestCellsAndClone(t *testing.T) {
	g, err := maze.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.SetEntrance(maze.Point{X: 0, Y: 0}))
	require.NoError(t, g.OpenPassage(0, 1, maze.East))

	cells := g.Cells()
	cells[0] = 0
	c, _ := g.CellAt(0, 0)
	assert.True(t, c.Has(maze.East), "Cells must return a copy")

	clone := g.Clone()
	require.NoError(t, clone.OpenPassage(0, 2, maze.South))
	c, _ = g.CellAt(0, 0)
	assert.False(t, c.Has(maze.South), "Clone must not share cells")
	assert.Equal(t, 2, clone.PassageCount())
	assert.Equal(t, 1, g.PassageCount())

	g.Reset()
	assert.True(t, g.Fresh())
	assert.Equal(t, 0, g.EntranceIndex())
}

// TestAll_StopsEarly ensures the iterator honours a false yield.
func TestAll_StopsEarly(t *testing.T) {
	g, err := maze.New(3, 3)
	require.NoError(t, err)

	n := 0
	for p := range g.All() {
		n++
		if p.X == 2 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

//----------------------------------------------------------------------------//
// Direction and Cell
//----------------------------------------------------------------------------//

// TestDirection checks inverse mapping, masks and names.
func TestDirection(t *testing.T) {
	want := map[maze.Direction]struct {
		opp  maze.Direction
		mask maze.Cell
		name string
	}{
		maze.North: {maze.South, 0x01, "north"},
		maze.East:  {maze.West, 0x02, "east"},
		maze.South: {maze.North, 0x04, "south"},
		maze.West:  {maze.East, 0x08, "west"},
	}
	for d, w := range want {
		assert.Equal(t, w.opp, d.Opposite())
		assert.Equal(t, w.mask, d.Mask())
		assert.Equal(t, w.name, d.String())
		assert.Equal(t, d, d.Opposite().Opposite())
	}
	assert.Equal(t, "Direction(7)", maze.Direction(7).String())
}

// TestCell_Visited checks that visitedness is derived from the bits.
func TestCell_Visited(t *testing.T) {
	var c maze.Cell
	assert.False(t, c.Visited())
	assert.Equal(t, "----", c.String())

	c |= maze.South.Mask()
	assert.True(t, c.Visited())
	assert.True(t, c.Has(maze.South))
	assert.False(t, c.Has(maze.North))
	assert.Equal(t, 1, c.Openings())

	c |= maze.North.Mask() | maze.West.Mask()
	assert.Equal(t, 3, c.Openings())
	assert.Equal(t, "N-SW", c.String())
}

// TestFromCells covers the raw constructor used by decoders.
func TestFromCells(t *testing.T) {
	cells := []maze.Cell{0x02 | 0x08, 0x08}
	g, err := maze.FromCells(2, 1, cells)
	require.NoError(t, err)
	cells[0] = 0
	c, _ := g.CellAt(0, 0)
	assert.Equal(t, maze.Cell(0x0A), c, "FromCells must copy its input")
	assert.Equal(t, 1, g.PassageCount())

	_, err = maze.FromCells(2, 2, cells)
	assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
	_, err = maze.FromCells(0, 1, nil)
	assert.ErrorIs(t, err, maze.ErrInvalidDimensions)
	_, err = maze.FromCells(1, 1, []maze.Cell{0x10})
	assert.ErrorIs(t, err, maze.ErrOutOfBounds)
}
