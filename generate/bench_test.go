package generate_test

import (
	"testing"

	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/maze"
)

// BenchmarkAlgorithms measures each generator on a 64×64 grid.
// A fresh grid is allocated per iteration outside the timer.
func BenchmarkAlgorithms(b *testing.B) {
	const n = 64
	for _, algo := range generate.Algorithms() {
		b.Run(algo.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				g := newGrid(b, n, n, maze.Point{X: 0, Y: 0}, maze.Point{X: n - 1, Y: n - 1})
				b.StartTimer()
				if err := generate.Run(g, algo, generate.WithSeed(int64(i+1))); err != nil {
					b.Fatalf("%v: %v", algo, err)
				}
			}
		})
	}
}
