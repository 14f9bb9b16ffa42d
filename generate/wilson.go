package generate

import "github.com/katalvlaran/labyrinth/maze"

// Wilson carves g with Wilson's loop-erased random walks.
//
// Both the entrance and the exit get their outer openings before the main
// loop. The tree is rooted at the entrance only; tree membership is tracked
// here rather than read from the cell bits, so the exit's outer opening does
// not make it a tree cell and it joins the tree through a walk like any
// other cell. The result is a single spanning tree.
//
// Steps:
//  1. Validate g; open entrance and exit outer walls.
//  2. unvisited = every cell but the entrance.
//  3. While unvisited is non-empty: start at a uniformly random unvisited
//     cell and walk (off-grid directions redrawn), recording for each cell
//     the direction it was last left by, until a tree cell is reached.
//     A revisited cell's direction is overwritten, which erases the loop.
//  4. Retrace from the start along the recorded directions up to the tree,
//     carving each step and moving each cell from unvisited into the tree.
//
// The result is a uniformly random spanning tree.
// Complexity: expected O(mean hitting time), memory O(W·H).
// WithMaxSteps caps the total direction draws (ErrStepLimit).
func Wilson(g *maze.Grid, opts ...Option) error {
	cfg := newConfig(opts...)
	if err := prepare(MethodWilson, g); err != nil {
		return err
	}
	root := g.EntranceIndex()
	if err := openBoundary(MethodWilson, g, root); err != nil {
		return err
	}
	if err := openBoundary(MethodWilson, g, g.ExitIndex()); err != nil {
		return err
	}

	n := g.Len()
	inTree := make([]bool, n)
	inTree[root] = true

	// unvisited with swap-remove positions; pos[i] == -1 once i is in the tree.
	unvisited := make([]int, 0, n-1)
	pos := make([]int, n)
	for i := 0; i < n; i++ {
		if i == root {
			pos[i] = -1
			continue
		}
		pos[i] = len(unvisited)
		unvisited = append(unvisited, i)
	}
	remove := func(i int) {
		j, last := pos[i], unvisited[len(unvisited)-1]
		unvisited[j] = last
		pos[last] = j
		unvisited = unvisited[:len(unvisited)-1]
		pos[i] = -1
	}

	exits := make([]maze.Direction, n)
	w := walker{g: g, src: cfg.src, limit: cfg.maxSteps}

	for len(unvisited) > 0 {
		start := unvisited[cfg.src.Intn(len(unvisited))]

		// Walk until the tree is hit.
		for cur := start; ; {
			d, next, err := w.step(cur)
			if err != nil {
				return wrapf(MethodWilson, err)
			}
			exits[cur] = d
			if inTree[next] {
				break
			}
			cur = next
		}

		// Retrace the loop-erased path.
		for cur := start; !inTree[cur]; {
			d := exits[cur]
			next, _ := g.Neighbor(cur, d)
			if err := carve(MethodWilson, g, cur, next, d); err != nil {
				return err
			}
			inTree[cur] = true
			remove(cur)
			cur = next
		}
	}

	return nil
}
