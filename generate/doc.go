// Package generate carves perfect mazes into a *maze.Grid.
//
// Every generator produces a spanning tree over all cells of a fresh grid:
// exactly one simple path joins any two cells. The entrance and exit
// designated on the grid receive an opening through the outer wall.
//
// Algorithms:
//
//   - RDFS          — randomized depth-first search (recursive backtracker).
//     Long winding corridors, few branches. O(W·H).
//   - Prim          — modified randomized Prim: a random *visited cell* grows
//     toward a random unvisited neighbour (not a random frontier edge).
//     Short dead ends, many branches. O(W·H) expected.
//   - AldousBroder  — random-walk cover; uniform spanning tree. Expected time
//     is the cover time of the walk. Optionally bounded by WithMaxSteps.
//   - Wilson        — loop-erased random walks rooted at the entrance;
//     uniform spanning tree, faster than Aldous–Broder in expectation.
//   - Kruskal       — shuffled edges joined by union-find. O(W·H·α(W·H)).
//
// Randomness:
//
//   - All choices are drawn from a Source (Intn). *rand.Rand satisfies it.
//   - Without options the generators use a fixed default seed, so a call is
//     reproducible; use WithSeed/WithRand/WithSource to vary it.
//   - A Source is consumed sequentially and must not be shared across
//     goroutines.
//
// Errors:
//
//   - ErrNilGrid, ErrNoEntrance, ErrNoExit, ErrGridNotFresh: invalid input.
//   - ErrStepLimit: a random walk exceeded WithMaxSteps.
//   - ErrUnknownAlgorithm: ParseAlgorithm/Run received an unknown value.
//
// Generators never panic. Option constructors panic on meaningless input.
package generate
