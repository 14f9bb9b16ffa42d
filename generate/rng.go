// Package generate - RNG utilities shared by the generators.
//
// Goals:
//   - Determinism: same seed ⇒ identical maze.
//   - Encapsulation: a single RNG factory; no time-based sources here.
//   - Bounded walks: every direction draw of a random walk goes through
//     walker so WithMaxSteps applies uniformly.
package generate

import (
	"math/rand"

	"github.com/katalvlaran/labyrinth/maze"
)

// defaultSeed is used when callers pass seed == 0 or no option at all.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ defaultSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// shuffle performs an in-place Fisher–Yates shuffle driven by src.
// Complexity: O(n) time, O(1) extra space.
func shuffle[T any](a []T, src Source) {
	for i := len(a) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// walker draws walk directions, rejecting those that would leave the grid.
// Every draw counts toward limit, rejected ones included.
type walker struct {
	g     *maze.Grid
	src   Source
	limit int // 0 = unbounded
	used  int
}

// step picks a uniformly random direction out of cur that has a neighbour,
// resampling directions that point off the grid.
// The grid must have at least two cells.
func (w *walker) step(cur int) (maze.Direction, int, error) {
	for {
		if w.limit > 0 && w.used >= w.limit {
			return 0, -1, ErrStepLimit
		}
		w.used++
		d := maze.Directions[w.src.Intn(len(maze.Directions))]
		if next, ok := w.g.Neighbor(cur, d); ok {
			return d, next, nil
		}
	}
}

// candidate is a carving option: an unvisited neighbour and the way to it.
type candidate struct {
	cell int
	dir  maze.Direction
}

// unvisitedNeighbors fills buf with the unvisited neighbours of i in
// N, E, S, W order and returns how many were found.
func unvisitedNeighbors(g *maze.Grid, i int, buf *[4]candidate) int {
	k := 0
	for _, d := range maze.Directions {
		n, ok := g.Neighbor(i, d)
		if !ok {
			continue
		}
		if c, err := g.CellByIndex(n); err == nil && !c.Visited() {
			buf[k] = candidate{cell: n, dir: d}
			k++
		}
	}
	return k
}
