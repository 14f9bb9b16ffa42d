package generate

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/labyrinth/maze"
)

// Algorithm selects a generator for Run and New.
type Algorithm int

const (
	// AlgoRDFS selects RDFS.
	AlgoRDFS Algorithm = iota
	// AlgoPrim selects Prim.
	AlgoPrim
	// AlgoAldousBroder selects AldousBroder.
	AlgoAldousBroder
	// AlgoWilson selects Wilson.
	AlgoWilson
	// AlgoKruskal selects Kruskal.
	AlgoKruskal
)

// Method names used as error context.
const (
	MethodRDFS         = "RDFS"
	MethodPrim         = "Prim"
	MethodAldousBroder = "AldousBroder"
	MethodWilson       = "Wilson"
	MethodKruskal      = "Kruskal"
)

var algorithmNames = map[Algorithm]string{
	AlgoRDFS:         "rdfs",
	AlgoPrim:         "prim",
	AlgoAldousBroder: "aldous-broder",
	AlgoWilson:       "wilson",
	AlgoKruskal:      "kruskal",
}

var generators = map[Algorithm]func(*maze.Grid, ...Option) error{
	AlgoRDFS:         RDFS,
	AlgoPrim:         Prim,
	AlgoAldousBroder: AldousBroder,
	AlgoWilson:       Wilson,
	AlgoKruskal:      Kruskal,
}

// Algorithms lists every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgoRDFS, AlgoPrim, AlgoAldousBroder, AlgoWilson, AlgoKruskal}
}

// String returns the canonical lower-case name ("rdfs", "aldous-broder", ...).
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm resolves a name case-insensitively; '-', '_' and spaces
// are ignored, and "dfs" is accepted for RDFS.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))
	switch key {
	case "rdfs", "dfs":
		return AlgoRDFS, nil
	case "prim":
		return AlgoPrim, nil
	case "aldousbroder":
		return AlgoAldousBroder, nil
	case "wilson":
		return AlgoWilson, nil
	case "kruskal":
		return AlgoKruskal, nil
	}
	return 0, fmt.Errorf("ParseAlgorithm(%q): %w", name, ErrUnknownAlgorithm)
}

// Run carves g with the selected algorithm.
func Run(g *maze.Grid, algo Algorithm, opts ...Option) error {
	gen, ok := generators[algo]
	if !ok {
		return fmt.Errorf("Run(%v): %w", algo, ErrUnknownAlgorithm)
	}
	return gen(g, opts...)
}

// New allocates a width×height grid, designates entrance and exit, and
// carves it with algo. Errors from maze.New and SetEntrance/SetExit are
// returned wrapped and stay matchable with errors.Is.
func New(width, height int, entrance, exit maze.Point, algo Algorithm, opts ...Option) (*maze.Grid, error) {
	g, err := maze.New(width, height)
	if err != nil {
		return nil, err
	}
	if err = g.SetEntrance(entrance); err != nil {
		return nil, fmt.Errorf("New: entrance: %w", err)
	}
	if err = g.SetExit(exit); err != nil {
		return nil, fmt.Errorf("New: exit: %w", err)
	}
	if err = Run(g, algo, opts...); err != nil {
		return nil, err
	}

	return g, nil
}

// prepare validates the generator preconditions shared by all algorithms.
func prepare(method string, g *maze.Grid) error {
	switch {
	case g == nil:
		return wrapf(method, ErrNilGrid)
	case g.EntranceIndex() < 0:
		return wrapf(method, ErrNoEntrance)
	case g.ExitIndex() < 0:
		return wrapf(method, ErrNoExit)
	case !g.Fresh():
		return wrapf(method, ErrGridNotFresh)
	}
	return nil
}

// openBoundary punches the outer wall of cell i, wrapping failures.
func openBoundary(method string, g *maze.Grid, i int) error {
	if _, err := g.OpenBoundary(i); err != nil {
		return wrapf(method, err)
	}
	return nil
}

// carve opens the passage a→b toward d, wrapping failures.
func carve(method string, g *maze.Grid, a, b int, d maze.Direction) error {
	if err := g.OpenPassage(a, b, d); err != nil {
		return wrapf(method, err)
	}
	return nil
}
