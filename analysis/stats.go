package analysis

import (
	"fmt"
	"io"

	"github.com/katalvlaran/labyrinth/maze"
)

// Stats classifies cells by their number of open sides. Outer-wall
// openings count as open sides.
type Stats struct {
	Total      int // all cells
	DeadEnds   int // one open side
	Corridors  int // two open sides
	Junctions  int // three open sides
	Crossroads int // four open sides
}

// statsFormat is the classic feature table.
const statsFormat = "Feature   |Count|Percent\n" +
	"Total     |%5d|100.000\n" +
	"Dead-Ends |%5d|%7.3f\n" +
	"Corridors |%5d|%7.3f\n" +
	"Junctions |%5d|%7.3f\n" +
	"Crossroads|%5d|%7.3f\n"

// Compute tallies the cells of g.
// Complexity: O(W·H).
func Compute(g *maze.Grid) Stats {
	s := Stats{Total: g.Len()}
	for _, c := range g.All() {
		switch c.Openings() {
		case 1:
			s.DeadEnds++
		case 2:
			s.Corridors++
		case 3:
			s.Junctions++
		case 4:
			s.Crossroads++
		}
	}
	return s
}

// Percent returns count as a percentage of Total (0 for an empty tally).
func (s Stats) Percent(count int) float64 {
	if s.Total == 0 {
		return 0
	}
	return 100 * float64(count) / float64(s.Total)
}

// String renders the feature table.
func (s Stats) String() string {
	return fmt.Sprintf(statsFormat,
		s.Total,
		s.DeadEnds, s.Percent(s.DeadEnds),
		s.Corridors, s.Percent(s.Corridors),
		s.Junctions, s.Percent(s.Junctions),
		s.Crossroads, s.Percent(s.Crossroads),
	)
}

// WriteTo writes the feature table to w. It implements io.WriterTo.
func (s Stats) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}
