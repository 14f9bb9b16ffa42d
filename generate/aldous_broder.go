package generate

import "github.com/katalvlaran/labyrinth/maze"

// AldousBroder carves g with the Aldous–Broder random walk.
//
// Steps:
//  1. Validate g; open the entrance's outer wall; remaining = W·H − 1.
//  2. From the entrance, repeatedly step to a uniformly random neighbour
//     (directions leading off the grid are redrawn). Stepping onto an
//     unvisited cell carves the passage and decrements remaining; the walk
//     moves on regardless.
//  3. Stop when remaining == 0; open the exit's outer wall.
//
// The first entry into each cell forms a uniformly random spanning tree.
// Runtime is the cover time of the walk and has no fixed bound; use
// WithMaxSteps to cap the number of direction draws (ErrStepLimit).
// Memory: O(1) beyond the grid.
func AldousBroder(g *maze.Grid, opts ...Option) error {
	cfg := newConfig(opts...)
	if err := prepare(MethodAldousBroder, g); err != nil {
		return err
	}
	if err := openBoundary(MethodAldousBroder, g, g.EntranceIndex()); err != nil {
		return err
	}

	w := walker{g: g, src: cfg.src, limit: cfg.maxSteps}
	cur := g.EntranceIndex()
	for remaining := g.Len() - 1; remaining > 0; {
		d, next, err := w.step(cur)
		if err != nil {
			return wrapf(MethodAldousBroder, err)
		}
		if c, _ := g.CellByIndex(next); !c.Visited() {
			if err = carve(MethodAldousBroder, g, cur, next, d); err != nil {
				return err
			}
			remaining--
		}
		cur = next
	}

	return openBoundary(MethodAldousBroder, g, g.ExitIndex())
}
