package maze

import (
	"fmt"
	"iter"
	"math"
)

// New allocates a width×height grid with every wall closed and no
// entrance or exit designated.
// Returns ErrInvalidDimensions if either side is not positive or the area
// does not fit in an int.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("New(%d, %d): %w", width, height, ErrInvalidDimensions)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("New(%d, %d): area overflows int: %w", width, height, ErrInvalidDimensions)
	}

	return &Grid{
		width:    width,
		height:   height,
		cells:    make([]Cell, width*height),
		entrance: -1,
		exit:     -1,
	}, nil
}

// FromCells builds a grid from a row-major cell slice, e.g. one decoded by
// a renderer. The slice is copied. Symmetry is not checked here; use
// analysis.Verify for that.
// Returns ErrInvalidDimensions for bad sides or len(cells) != width*height,
// and ErrOutOfBounds for a cell with bits above West.
func FromCells(width, height int, cells []Cell) (*Grid, error) {
	g, err := New(width, height)
	if err != nil {
		return nil, err
	}
	if len(cells) != len(g.cells) {
		return nil, fmt.Errorf("FromCells: %d cells for %d×%d: %w", len(cells), width, height, ErrInvalidDimensions)
	}
	for i, c := range cells {
		if c&^visitedMask != 0 {
			return nil, fmt.Errorf("FromCells: cell %d has stray bits %#x: %w", i, uint8(c), ErrOutOfBounds)
		}
	}
	copy(g.cells, cells)

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsBorder reports whether p lies on the outer ring of the grid.
// Out-of-range points are not on the border.
func (g *Grid) IsBorder(p Point) bool {
	if !g.InBounds(p.X, p.Y) {
		return false
	}
	return p.X == 0 || p.X == g.width-1 || p.Y == 0 || p.Y == g.height-1
}

// Index maps (x,y) to its row-major index y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return -1, fmt.Errorf("Index(%d, %d): %w", x, y, ErrOutOfBounds)
	}
	return g.index(x, y), nil
}

// Coordinate converts a row-major index back to its point.
// Complexity: O(1).
func (g *Grid) Coordinate(i int) (Point, error) {
	if !g.validIndex(i) {
		return Point{}, fmt.Errorf("Coordinate(%d): %w", i, ErrOutOfBounds)
	}
	return g.point(i), nil
}

// CellAt returns the cell at (x,y).
func (g *Grid) CellAt(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("CellAt(%d, %d): %w", x, y, ErrOutOfBounds)
	}
	return g.cells[g.index(x, y)], nil
}

// CellByIndex returns the cell at row-major index i.
func (g *Grid) CellByIndex(i int) (Cell, error) {
	if !g.validIndex(i) {
		return 0, fmt.Errorf("CellByIndex(%d): %w", i, ErrOutOfBounds)
	}
	return g.cells[i], nil
}

// Neighbor returns the index of the cell adjacent to i in direction d.
// It reports false when i is on the boundary in that direction
// (North: row 0, South: last row, East: last column, West: column 0)
// or when i itself is out of range.
// Complexity: O(1).
func (g *Grid) Neighbor(i int, d Direction) (int, bool) {
	if !g.validIndex(i) || d > West {
		return -1, false
	}
	x, y := i%g.width, i/g.width
	switch d {
	case North:
		if y == 0 {
			return -1, false
		}
		return i - g.width, true
	case East:
		if x == g.width-1 {
			return -1, false
		}
		return i + 1, true
	case South:
		if y == g.height-1 {
			return -1, false
		}
		return i + g.width, true
	default: // West
		if x == 0 {
			return -1, false
		}
		return i - 1, true
	}
}

// Cells returns a row-major copy of every cell.
// Complexity: O(W×H).
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// All yields every cell with its coordinate in row-major order.
func (g *Grid) All() iter.Seq2[Point, Cell] {
	return func(yield func(Point, Cell) bool) {
		for i, c := range g.cells {
			if !yield(g.point(i), c) {
				return
			}
		}
	}
}

// SetEntrance designates the entrance cell. p must be on the border.
func (g *Grid) SetEntrance(p Point) error {
	i, err := g.borderIndex("SetEntrance", p)
	if err != nil {
		return err
	}
	g.entrance = i
	return nil
}

// SetExit designates the exit cell. p must be on the border.
// The exit may coincide with the entrance.
func (g *Grid) SetExit(p Point) error {
	i, err := g.borderIndex("SetExit", p)
	if err != nil {
		return err
	}
	g.exit = i
	return nil
}

// Entrance returns the entrance coordinate, or false if none is designated.
func (g *Grid) Entrance() (Point, bool) {
	if g.entrance < 0 {
		return Point{}, false
	}
	return g.point(g.entrance), true
}

// Exit returns the exit coordinate, or false if none is designated.
func (g *Grid) Exit() (Point, bool) {
	if g.exit < 0 {
		return Point{}, false
	}
	return g.point(g.exit), true
}

// EntranceIndex returns the entrance cell index, or -1.
func (g *Grid) EntranceIndex() int { return g.entrance }

// ExitIndex returns the exit cell index, or -1.
func (g *Grid) ExitIndex() int { return g.exit }

// Fresh reports whether no cell has any bit set.
func (g *Grid) Fresh() bool {
	for _, c := range g.cells {
		if c != 0 {
			return false
		}
	}
	return true
}

// PassageCount returns the number of interior passages. Each passage is
// counted once; boundary openings are not passages.
// Complexity: O(W×H).
func (g *Grid) PassageCount() int {
	n := 0
	for i, c := range g.cells {
		if c.Has(East) {
			if _, ok := g.Neighbor(i, East); ok {
				n++
			}
		}
		if c.Has(South) {
			if _, ok := g.Neighbor(i, South); ok {
				n++
			}
		}
	}
	return n
}

// Reset closes every wall. Entrance and exit designations are kept.
func (g *Grid) Reset() {
	clear(g.cells)
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = g.Cells()
	return &c
}

// index maps (x,y) to a row-major index without checking bounds.
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// point converts an in-range index to its coordinate.
func (g *Grid) point(i int) Point {
	return Point{X: i % g.width, Y: i / g.width}
}

func (g *Grid) validIndex(i int) bool {
	return i >= 0 && i < len(g.cells)
}

func (g *Grid) borderIndex(method string, p Point) (int, error) {
	if !g.InBounds(p.X, p.Y) {
		return -1, fmt.Errorf("%s(%v): %w", method, p, ErrOutOfBounds)
	}
	if !g.IsBorder(p) {
		return -1, fmt.Errorf("%s(%v): %w", method, p, ErrNotOnBorder)
	}
	return g.index(p.X, p.Y), nil
}
