package generate

import "github.com/katalvlaran/labyrinth/maze"

// edge is an interior wall between cell a and its East or South neighbour b.
type edge struct {
	a, b int
	dir  maze.Direction
}

// Kruskal carves g with randomized Kruskal: every interior wall is visited
// in random order and removed iff it separates two disjoint regions.
//
// Steps:
//  1. Validate g; open the entrance's outer wall.
//  2. Collect the East and South wall of every cell; Fisher–Yates shuffle.
//  3. Union-find (path halving, union by rank): carve an edge when its ends
//     have different roots. Stop after W·H − 1 unions.
//  4. Open the exit's outer wall.
//
// Complexity: O(E·α(V)) with E ≈ 2·W·H. Memory: O(W·H).
func Kruskal(g *maze.Grid, opts ...Option) error {
	cfg := newConfig(opts...)
	if err := prepare(MethodKruskal, g); err != nil {
		return err
	}
	if err := openBoundary(MethodKruskal, g, g.EntranceIndex()); err != nil {
		return err
	}

	n := g.Len()
	edges := make([]edge, 0, 2*n)
	for i := 0; i < n; i++ {
		for _, d := range [2]maze.Direction{maze.East, maze.South} {
			if j, ok := g.Neighbor(i, d); ok {
				edges = append(edges, edge{a: i, b: j, dir: d})
			}
		}
	}
	shuffle(edges, cfg.src)

	ds := newDisjointSet(n)
	for joined, k := 0, 0; joined < n-1 && k < len(edges); k++ {
		e := edges[k]
		if !ds.union(e.a, e.b) {
			continue
		}
		if err := carve(MethodKruskal, g, e.a, e.b, e.dir); err != nil {
			return err
		}
		joined++
	}

	return openBoundary(MethodKruskal, g, g.ExitIndex())
}

// disjointSet is an array-backed union-find over cell indices.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
	}
	return ds
}

// find returns the root of u, halving the path on the way.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}
	return u
}

// union merges the sets of u and v; false if they were already joined.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}
	return true
}
