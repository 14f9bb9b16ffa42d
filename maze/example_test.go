// File: maze/example_test.go
package maze_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/maze"
)

////////////////////////////////////////////////////////////////////////////////
// Example: carving by hand
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_OpenPassage carves a 2×2 "U" shape by hand and prints each
// cell's open sides.
//
//	in ┃ ┃ out
//	   ┗━┛
func ExampleGrid_OpenPassage() {
	g, _ := maze.New(2, 2)
	_ = g.SetEntrance(maze.Point{X: 0, Y: 0})
	_ = g.SetExit(maze.Point{X: 1, Y: 0})

	_ = g.OpenPassage(0, 2, maze.South) // (0,0) ↓ (0,1)
	_ = g.OpenPassage(2, 3, maze.East)  // (0,1) → (1,1)
	_ = g.OpenPassage(3, 1, maze.North) // (1,1) ↑ (1,0)
	in, _ := g.OpenBoundary(g.EntranceIndex())
	out, _ := g.OpenBoundary(g.ExitIndex())

	fmt.Println("entrance opens", in, "exit opens", out)
	for p, c := range g.All() {
		fmt.Printf("(%v) %v\n", p, c)
	}
	fmt.Println("passages:", g.PassageCount())

	// Output:
	// entrance opens west exit opens east
	// (0,0) --SW
	// (1,0) -ES-
	// (0,1) NE--
	// (1,1) N--W
	// passages: 3
}
