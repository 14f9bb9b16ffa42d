package server

import (
	"bytes"
	"errors"
	"image/png"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/katalvlaran/labyrinth/analysis"
	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
)

// Content types served by GET /mazes/:id.
const (
	contentText = "text/plain; charset=utf-8"
	contentPBM  = "image/x-portable-bitmap"
	contentPNG  = "image/png"
)

// MazeController handles the maze routes.
type MazeController struct {
	defaults config.Config
	store    *Store
	seed     func() int64
	now      func() time.Time
}

// NewMazeController creates a controller that fills request gaps from
// defaults and keeps results in store. seed supplies a seed when a
// request has none; nil means the current time in nanoseconds.
func NewMazeController(defaults config.Config, store *Store, seed func() int64) *MazeController {
	if seed == nil {
		seed = func() int64 { return time.Now().UnixNano() }
	}
	return &MazeController{defaults: defaults, store: store, seed: seed, now: time.Now}
}

// Register mounts the routes on route.
func (c *MazeController) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", c.create)
		mazes.GET("/:id", c.get)
		mazes.DELETE("/:id", c.remove)
	}
	route.GET("/algorithms", c.algorithms)
}

// create handles POST /mazes.
func (c *MazeController) create(ctx *gin.Context) {
	var request CreateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := c.generate(request)
	if err != nil {
		status := http.StatusInternalServerError
		if isClientError(err) {
			status = http.StatusBadRequest
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.store.Put(record)

	ctx.Header("Location", ctx.FullPath()+"/"+record.ID.String())
	ctx.JSON(http.StatusCreated, newMazeResponse(record))
}

// get handles GET /mazes/:id.
func (c *MazeController) get(ctx *gin.Context) {
	record, ok := c.lookup(ctx)
	if !ok {
		return
	}

	switch format := ctx.DefaultQuery("format", "json"); format {
	case "json":
		ctx.JSON(http.StatusOK, newMazeResponse(record))
	case "text":
		ctx.Data(http.StatusOK, contentText, []byte(render.Text(record.Grid)))
	case "stats":
		ctx.Data(http.StatusOK, contentText, []byte(analysis.Compute(record.Grid).String()))
	case "pbm":
		var buf bytes.Buffer
		if err := render.WritePBM(&buf, record.Grid); err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.Data(http.StatusOK, contentPBM, buf.Bytes())
	case "png":
		var buf bytes.Buffer
		if err := png.Encode(&buf, render.NewBitmap(record.Grid)); err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		ctx.Data(http.StatusOK, contentPNG, buf.Bytes())
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown format " + format})
	}
}

// remove handles DELETE /mazes/:id.
func (c *MazeController) remove(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if !c.store.Delete(id) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// algorithms handles GET /algorithms.
func (c *MazeController) algorithms(ctx *gin.Context) {
	names := make([]string, 0, len(generate.Algorithms()))
	for _, a := range generate.Algorithms() {
		names = append(names, a.String())
	}
	ctx.JSON(http.StatusOK, gin.H{"algorithms": names, "default": c.defaults.Algorithm})
}

// generate resolves request against the defaults and carves a new maze.
func (c *MazeController) generate(request CreateRequest) (Record, error) {
	w, h := request.Width, request.Height
	if w == 0 {
		w = c.defaults.Width
	}
	if h == 0 {
		h = c.defaults.Height
	}
	name := request.Algorithm
	if name == "" {
		name = c.defaults.Algorithm
	}
	algo, err := generate.ParseAlgorithm(name)
	if err != nil {
		return Record{}, err
	}
	in, out := c.portals(w, h, request)
	if err = config.ValidateMaze(w, h, in, out); err != nil {
		return Record{}, err
	}
	seed := request.Seed
	if seed == 0 {
		seed = c.seed()
	}

	g, err := generate.New(w, h, in, out, algo, generate.WithSeed(seed))
	if err != nil {
		return Record{}, err
	}
	return Record{ID: uuid.New(), Algorithm: algo, Seed: seed, Grid: g, CreatedAt: c.now()}, nil
}

// portals picks entrance and exit: the request's, else the configured
// ones when they fit a w×h grid, else the top-left and bottom-right corners.
func (c *MazeController) portals(w, h int, request CreateRequest) (maze.Point, maze.Point) {
	in, out := c.defaults.Entrance, c.defaults.Exit
	if config.ValidateMaze(w, h, in, out) != nil {
		in, out = maze.Point{}, maze.Point{X: w - 1, Y: h - 1}
	}
	if request.Entrance != nil {
		in = request.Entrance.point()
	}
	if request.Exit != nil {
		out = request.Exit.point()
	}
	return in, out
}

// lookup resolves the :id parameter, writing the error response itself.
func (c *MazeController) lookup(ctx *gin.Context) (Record, bool) {
	id, ok := parseID(ctx)
	if !ok {
		return Record{}, false
	}
	record, ok := c.store.Get(id)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "maze not found"})
		return Record{}, false
	}
	return record, true
}

func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return id, true
}

func isClientError(err error) bool {
	for _, target := range []error{
		config.ErrInvalidConfig,
		generate.ErrUnknownAlgorithm,
		maze.ErrInvalidDimensions,
		maze.ErrOutOfBounds,
		maze.ErrNotOnBorder,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
