package maze

import (
	"fmt"
	"math/bits"
)

// Direction names one of the four sides of a cell.
type Direction uint8

const (
	// North points to the previous row (y-1).
	North Direction = iota
	// East points to the next column (x+1).
	East
	// South points to the next row (y+1).
	South
	// West points to the previous column (x-1).
	West
)

// Directions lists every direction in bit order. Generators scan neighbours
// in this order, so it is part of their deterministic behaviour.
var Directions = [4]Direction{North, East, South, West}

// opposite maps a direction to the side it faces.
var opposite = [4]Direction{North: South, East: West, South: North, West: East}

// offsets holds the (dx, dy) step for each direction.
var offsets = [4][2]int{North: {0, -1}, East: {1, 0}, South: {0, 1}, West: {-1, 0}}

var directionNames = [4]string{North: "north", East: "east", South: "south", West: "west"}

// Opposite returns the inverse direction (North↔South, East↔West).
func (d Direction) Opposite() Direction {
	return opposite[d&3]
}

// Mask returns the cell bit that represents an opening toward d.
func (d Direction) Mask() Cell {
	return Cell(1) << (d & 3)
}

// Offset returns the coordinate step for d.
func (d Direction) Offset() (dx, dy int) {
	o := offsets[d&3]
	return o[0], o[1]
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d > West {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// Cell is a passage bitfield: bit d is set when the wall toward d is open.
type Cell uint8

// visitedMask covers all four direction bits.
const visitedMask Cell = 0x0F

// Has reports whether the wall toward d is open.
func (c Cell) Has(d Direction) bool {
	return c&d.Mask() != 0
}

// Visited reports whether any direction bit is set.
func (c Cell) Visited() bool {
	return c&visitedMask != 0
}

// Openings returns the number of open sides, boundary openings included.
func (c Cell) Openings() int {
	return bits.OnesCount8(uint8(c & visitedMask))
}

// String renders the open sides as a compact "NESW" mask, '-' for walls.
func (c Cell) String() string {
	b := []byte("----")
	for i, d := range Directions {
		if c.Has(d) {
			b[i] = "NESW"[i]
		}
	}
	return string(b)
}

// Point is a cell coordinate: X is the column, Y is the row.
type Point struct {
	X, Y int
}

// String implements fmt.Stringer as "x,y".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Grid is a Width×Height maze stored as a flat row-major slice.
// entrance and exit hold cell indices, or -1 while undesignated.
// A Grid is not safe for concurrent mutation.
type Grid struct {
	width, height int
	cells         []Cell
	entrance      int
	exit          int
}
