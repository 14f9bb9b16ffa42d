// Package maze models a rectangular maze as a flat grid of bitfield cells.
//
// What:
//
//   - Grid owns Width×Height cells stored row-major; (x,y) ↔ index conversions
//     are explicit and checked.
//   - Cell is a 4-bit passage mask (N=0x01, E=0x02, S=0x04, W=0x08). A set bit
//     means the wall toward that side is open.
//   - A cell is "visited" iff any bit is set. There is no separate flag.
//   - OpenPassage carves a symmetric passage between two adjacent cells.
//   - OpenBoundary punches the outer wall of a border cell (entrance/exit).
//
// Why:
//
//   - Generators in package generate mutate a Grid in place and rely only on
//     these primitives, so the symmetry invariant holds by construction.
//   - Renderers read Cells() or All() and the designated entrance/exit.
//
// Complexity:
//
//   - Index, Coordinate, CellAt, Neighbor, OpenPassage, OpenBoundary: O(1).
//   - Cells, Fresh, PassageCount, Reset, Clone: O(W×H).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height ≤ 0, or area overflows int.
//   - ErrOutOfBounds: coordinate or index outside the grid.
//   - ErrNotAdjacent: OpenPassage cells are not neighbours in that direction.
//   - ErrNotOnBorder: entrance/exit or boundary opening on an interior cell.
package maze
