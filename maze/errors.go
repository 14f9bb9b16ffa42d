package maze

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimensions indicates a grid with a zero or negative side, or an area too large to index.
	ErrInvalidDimensions = errors.New("maze: width and height must be positive")
	// ErrOutOfBounds indicates a coordinate or cell index outside the grid.
	ErrOutOfBounds = errors.New("maze: position out of bounds")
	// ErrNotAdjacent indicates two cells that are not neighbours in the stated direction.
	ErrNotAdjacent = errors.New("maze: cells are not adjacent in that direction")
	// ErrNotOnBorder indicates a cell that does not touch the outer wall.
	ErrNotOnBorder = errors.New("maze: cell is not on the grid border")
)
