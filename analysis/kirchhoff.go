package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/labyrinth/maze"
)

// maxKirchhoffCells bounds SpanningTreeCount: the count for a 20×20 grid is
// near 1e200, close to the float64 range.
const maxKirchhoffCells = 400

// SpanningTreeCount returns the number of spanning trees of the W×H grid
// graph (4-connectivity) via Kirchhoff's matrix-tree theorem: the
// determinant of the Laplacian with one row and column removed.
//
// The determinant is computed with Gaussian elimination and partial
// pivoting in float64 and rounded to the nearest integer.
// Errors: maze.ErrInvalidDimensions for non-positive sides, ErrTooLarge
// above maxKirchhoffCells cells.
// Complexity: O((W·H)³) time, O((W·H)²) memory.
func SpanningTreeCount(width, height int) (float64, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("SpanningTreeCount(%d, %d): %w", width, height, maze.ErrInvalidDimensions)
	}
	if width > maxKirchhoffCells || height > maxKirchhoffCells || width*height > maxKirchhoffCells {
		return 0, fmt.Errorf("SpanningTreeCount(%d, %d): %w", width, height, ErrTooLarge)
	}
	n := width * height
	if n == 1 {
		return 1, nil
	}

	// Reduced Laplacian: drop the last vertex.
	m := n - 1
	a := make([][]float64, m)
	for i := range a {
		a[i] = make([]float64, m)
	}
	for i := 0; i < n; i++ {
		x, y := i%width, i/width
		for _, d := range [][2]int{{1, 0}, {0, 1}} {
			nx, ny := x+d[0], y+d[1]
			if nx >= width || ny >= height {
				continue
			}
			j := ny*width + nx
			if i < m {
				a[i][i]++
			}
			if j < m {
				a[j][j]++
			}
			if i < m && j < m {
				a[i][j]--
				a[j][i]--
			}
		}
	}

	return math.Round(determinant(a)), nil
}

// determinant destroys a and returns its determinant.
func determinant(a [][]float64) float64 {
	n := len(a)
	det := 1.0
	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if a[pivot][col] == 0 {
			return 0
		}
		if pivot != col {
			a[pivot], a[col] = a[col], a[pivot]
			det = -det
		}
		det *= a[col][col]
		for r := col + 1; r < n; r++ {
			f := a[r][col] / a[col][col]
			if f == 0 {
				continue
			}
			for k := col; k < n; k++ {
				a[r][k] -= f * a[col][k]
			}
		}
	}
	return det
}

// Signature returns a canonical key for the spanning tree carved in g:
// one character per cell encoding its East and South passages. Outer-wall
// openings are ignored, so two grids share a signature iff they carry the
// same interior passages.
func Signature(g *maze.Grid) string {
	var b strings.Builder
	b.Grow(g.Len())
	for i := 0; i < g.Len(); i++ {
		c, _ := g.CellByIndex(i)
		k := byte('0')
		if _, ok := g.Neighbor(i, maze.East); ok && c.Has(maze.East) {
			k++
		}
		if _, ok := g.Neighbor(i, maze.South); ok && c.Has(maze.South) {
			k += 2
		}
		b.WriteByte(k)
	}
	return b.String()
}
