package render_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
)

// ExampleWriteText prints a 4×1 corridor, which has a single spanning tree.
func ExampleWriteText() {
	g, _ := generate.New(4, 1, maze.Point{X: 0, Y: 0}, maze.Point{X: 3, Y: 0}, generate.AlgoRDFS)
	_ = render.WriteText(os.Stdout, g)

	b := render.NewBitmap(g)
	fmt.Println(b.Width(), b.Height())
	for x := 0; x < b.Width(); x++ {
		if b.Black(x, 1) {
			fmt.Print("#")
		} else {
			fmt.Print(".")
		}
	}
	fmt.Println()

	// Output:
	// ━━━━
	// 9 3
	// .........
}
