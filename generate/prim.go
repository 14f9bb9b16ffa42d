package generate

import "github.com/katalvlaran/labyrinth/maze"

// Prim carves g with a modified randomized Prim's algorithm.
//
// Unlike the textbook version, which draws a random frontier edge, this
// variant draws a random *visited cell* from its active list and then a
// random unvisited neighbour of that cell. The resulting trees are biased
// differently from edge-based Prim; the behaviour is intentional.
//
// Steps:
//  1. Validate g; open the entrance's outer wall; active = [entrance].
//  2. While active is non-empty: i = Intn(len(active)).
//     If active[i] has unvisited neighbours, pick one uniformly, carve
//     toward it and append it. Otherwise swap-remove active[i]: it can no
//     longer grow the tree.
//  3. Open the exit's outer wall.
//
// Order within active carries no meaning, so removal is O(1).
// Complexity: O(W·H) expected iterations, O(W·H) memory.
func Prim(g *maze.Grid, opts ...Option) error {
	cfg := newConfig(opts...)
	if err := prepare(MethodPrim, g); err != nil {
		return err
	}
	if err := openBoundary(MethodPrim, g, g.EntranceIndex()); err != nil {
		return err
	}

	active := make([]int, 1, g.Len())
	active[0] = g.EntranceIndex()
	var buf [4]candidate

	for len(active) > 0 {
		i := cfg.src.Intn(len(active))
		cell := active[i]
		k := unvisitedNeighbors(g, cell, &buf)
		if k == 0 {
			last := len(active) - 1
			active[i] = active[last]
			active = active[:last]
			continue
		}
		next := buf[cfg.src.Intn(k)]
		if err := carve(MethodPrim, g, cell, next.cell, next.dir); err != nil {
			return err
		}
		active = append(active, next.cell)
	}

	return openBoundary(MethodPrim, g, g.ExitIndex())
}
