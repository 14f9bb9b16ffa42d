package server

import (
	"github.com/katalvlaran/labyrinth/analysis"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
)

// PointDTO is a cell coordinate on the wire.
type PointDTO struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p PointDTO) point() maze.Point { return maze.Point{X: p.X, Y: p.Y} }

func pointDTO(p maze.Point) PointDTO { return PointDTO{X: p.X, Y: p.Y} }

// CreateRequest is the body of POST /v1/mazes. Zero or missing fields
// take the server defaults; a zero seed asks the server to pick one.
type CreateRequest struct {
	Width     int       `json:"width" binding:"min=0"`
	Height    int       `json:"height" binding:"min=0"`
	Algorithm string    `json:"algorithm"`
	Seed      int64     `json:"seed"`
	Entrance  *PointDTO `json:"entrance"`
	Exit      *PointDTO `json:"exit"`
}

// StatsDTO mirrors analysis.Stats.
type StatsDTO struct {
	Total      int `json:"total"`
	DeadEnds   int `json:"dead_ends"`
	Corridors  int `json:"corridors"`
	Junctions  int `json:"junctions"`
	Crossroads int `json:"crossroads"`
}

// MazeResponse describes a stored maze.
type MazeResponse struct {
	ID        string   `json:"id"`
	Width     int      `json:"width"`
	Height    int      `json:"height"`
	Algorithm string   `json:"algorithm"`
	Seed      int64    `json:"seed"`
	Entrance  PointDTO `json:"entrance"`
	Exit      PointDTO `json:"exit"`
	Cells     []int    `json:"cells"`
	Text      string   `json:"text"`
	Stats     StatsDTO `json:"stats"`
	CreatedAt int64    `json:"created_at"`
}

func newMazeResponse(r Record) MazeResponse {
	g := r.Grid
	in, _ := g.Entrance()
	out, _ := g.Exit()

	raw := g.Cells()
	cells := make([]int, len(raw))
	for i, c := range raw {
		cells[i] = int(c)
	}
	st := analysis.Compute(g)

	return MazeResponse{
		ID:        r.ID.String(),
		Width:     g.Width(),
		Height:    g.Height(),
		Algorithm: r.Algorithm.String(),
		Seed:      r.Seed,
		Entrance:  pointDTO(in),
		Exit:      pointDTO(out),
		Cells:     cells,
		Text:      render.Text(g),
		Stats: StatsDTO{
			Total:      st.Total,
			DeadEnds:   st.DeadEnds,
			Corridors:  st.Corridors,
			Junctions:  st.Junctions,
			Crossroads: st.Crossroads,
		},
		CreatedAt: r.CreatedAt.Unix(),
	}
}
