package generate

import "github.com/katalvlaran/labyrinth/maze"

// RDFS carves g with a randomized depth-first search (recursive backtracker).
//
// Steps:
//  1. Validate g; open the entrance's outer wall.
//  2. Push the entrance. While the stack is non-empty, look at the top cell's
//     unvisited neighbours (all four bits clear), scanned N, E, S, W.
//  3. If there are any, pick one uniformly, carve toward it and push it;
//     otherwise pop.
//  4. Open the exit's outer wall.
//
// Every cell is pushed exactly once and popped exactly once.
// Complexity: O(W·H) time, O(W·H) stack.
func RDFS(g *maze.Grid, opts ...Option) error {
	cfg := newConfig(opts...)
	if err := prepare(MethodRDFS, g); err != nil {
		return err
	}
	if err := openBoundary(MethodRDFS, g, g.EntranceIndex()); err != nil {
		return err
	}

	stack := make([]int, 1, g.Len())
	stack[0] = g.EntranceIndex()
	var buf [4]candidate

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		k := unvisitedNeighbors(g, top, &buf)
		if k == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		next := buf[cfg.src.Intn(k)]
		if err := carve(MethodRDFS, g, top, next.cell, next.dir); err != nil {
			return err
		}
		stack = append(stack, next.cell)
	}

	return openBoundary(MethodRDFS, g, g.ExitIndex())
}
