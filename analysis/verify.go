package analysis

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/maze"
)

// Verify reports whether g is a perfect maze.
//
// Checks, in order:
//  1. Every interior passage bit has its mirror on the neighbour (ErrAsymmetric).
//  2. Outer-wall bits appear only on the entrance and exit, on the side
//     OpenBoundary would choose, and both are present when designated (ErrBoundary).
//  3. Exactly W·H−1 passages (ErrEdgeCount).
//  4. BFS from cell 0 reaches every cell (ErrDisconnected). With W·H−1
//     edges, connectivity implies there is no cycle.
//
// Complexity: O(W·H) time and memory.
func Verify(g *maze.Grid) error {
	n := g.Len()
	boundary := boundaryExpectations(g)

	for i := 0; i < n; i++ {
		c, _ := g.CellByIndex(i)
		for _, d := range maze.Directions {
			if !c.Has(d) {
				continue
			}
			j, ok := g.Neighbor(i, d)
			if !ok {
				if boundary[i]&d.Mask() == 0 {
					p, _ := g.Coordinate(i)
					return fmt.Errorf("Verify: cell %v opens %v: %w", p, d, ErrBoundary)
				}
				continue
			}
			if nc, _ := g.CellByIndex(j); !nc.Has(d.Opposite()) {
				p, _ := g.Coordinate(i)
				return fmt.Errorf("Verify: cell %v opens %v: %w", p, d, ErrAsymmetric)
			}
		}
	}
	for i, want := range boundary {
		c, _ := g.CellByIndex(i)
		if c&want != want {
			p, _ := g.Coordinate(i)
			return fmt.Errorf("Verify: cell %v lacks its outer opening: %w", p, ErrBoundary)
		}
	}

	if got := g.PassageCount(); got != n-1 {
		return fmt.Errorf("Verify: %d passages, want %d: %w", got, n-1, ErrEdgeCount)
	}

	if reached := reachable(g, 0); reached != n {
		return fmt.Errorf("Verify: %d of %d cells reachable: %w", reached, n, ErrDisconnected)
	}

	return nil
}

// boundaryExpectations maps the entrance and exit indices to the outer bit
// each must carry.
func boundaryExpectations(g *maze.Grid) map[int]maze.Cell {
	want := make(map[int]maze.Cell, 2)
	for _, i := range []int{g.EntranceIndex(), g.ExitIndex()} {
		if i < 0 {
			continue
		}
		p, _ := g.Coordinate(i)
		if d, ok := g.BoundarySide(p); ok {
			want[i] |= d.Mask()
		}
	}
	return want
}

// reachable counts the cells reachable from src through open passages.
func reachable(g *maze.Grid, src int) int {
	seen := make([]bool, g.Len())
	queue := []int{src}
	seen[src] = true

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		c, _ := g.CellByIndex(u)
		for _, d := range maze.Directions {
			if !c.Has(d) {
				continue
			}
			v, ok := g.Neighbor(u, d)
			if !ok || seen[v] {
				continue
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}
	return len(queue)
}
