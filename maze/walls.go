package maze

import "fmt"

// OpenPassage carves a passage from cell a toward d into cell b.
// It sets d on a and d.Opposite() on b; either both cells change or neither.
//
// Errors:
//   - ErrOutOfBounds if a or b is not a valid index.
//   - ErrNotAdjacent if b is not Neighbor(a, d).
//
// Complexity: O(1).
func (g *Grid) OpenPassage(a, b int, d Direction) error {
	if !g.validIndex(a) || !g.validIndex(b) {
		return fmt.Errorf("OpenPassage(%d, %d, %v): %w", a, b, d, ErrOutOfBounds)
	}
	n, ok := g.Neighbor(a, d)
	if !ok || n != b {
		return fmt.Errorf("OpenPassage(%d, %d, %v): %w", a, b, d, ErrNotAdjacent)
	}
	g.cells[a] |= d.Mask()
	g.cells[b] |= d.Opposite().Mask()

	return nil
}

// OpenBoundary opens the outer wall of border cell i and returns the side
// that was opened. Corner cells touch two borders; the side is chosen with
// a fixed precedence: column 0 → West, last column → East, row 0 → North,
// otherwise South.
//
// Errors:
//   - ErrOutOfBounds if i is not a valid index.
//   - ErrNotOnBorder if i is an interior cell.
//
// Complexity: O(1).
func (g *Grid) OpenBoundary(i int) (Direction, error) {
	if !g.validIndex(i) {
		return 0, fmt.Errorf("OpenBoundary(%d): %w", i, ErrOutOfBounds)
	}
	p := g.point(i)
	d, ok := g.BoundarySide(p)
	if !ok {
		return 0, fmt.Errorf("OpenBoundary(%v): %w", p, ErrNotOnBorder)
	}
	g.cells[i] |= d.Mask()

	return d, nil
}

// BoundarySide returns the side OpenBoundary would open for p, without
// mutating the grid. It reports false for interior or out-of-range points.
func (g *Grid) BoundarySide(p Point) (Direction, bool) {
	if !g.IsBorder(p) {
		return 0, false
	}
	switch {
	case p.X == 0:
		return West, true
	case p.X == g.width-1:
		return East, true
	case p.Y == 0:
		return North, true
	default:
		return South, true
	}
}
