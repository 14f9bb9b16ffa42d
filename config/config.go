// Package config loads runtime settings for the maze binaries from a .env
// file, the process environment and built-in defaults, in rising order of
// precedence: defaults < .env < environment. Command-line flags, where a
// binary has them, override all three.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/maze"
)

// ErrInvalidConfig indicates a value that cannot be parsed or is out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variable names.
const (
	EnvWidth         = "MAZE_WIDTH"
	EnvHeight        = "MAZE_HEIGHT"
	EnvAlgorithm     = "MAZE_ALGORITHM"
	EnvSeed          = "MAZE_SEED"
	EnvEntrance      = "MAZE_ENTRANCE"
	EnvExit          = "MAZE_EXIT"
	EnvAddr          = "MAZE_ADDR"
	EnvStoreCapacity = "MAZE_STORE_CAPACITY"
	EnvGinMode       = "GIN_MODE"
)

// MaxCells caps Width×Height so a single request cannot exhaust memory.
const MaxCells = 1 << 20

// Config holds the settings shared by cmd/mazegen and cmd/mazeserver.
type Config struct {
	Width         int        // columns of a generated maze
	Height        int        // rows of a generated maze
	Algorithm     string     // generator name, see generate.ParseAlgorithm
	Seed          int64      // 0 means "pick one at run time"
	Entrance      maze.Point // border cell opened toward the outside
	Exit          maze.Point // border cell opened toward the outside
	Addr          string     // HTTP listen address
	StoreCapacity int        // mazes kept in memory by the server
	GinMode       string     // gin mode: release, debug or test
}

// Default returns the classic 10×10 RDFS maze with entrance (0,1) and
// exit (0,8).
func Default() Config {
	return Config{
		Width:         10,
		Height:        10,
		Algorithm:     generate.AlgoRDFS.String(),
		Entrance:      maze.Point{X: 0, Y: 1},
		Exit:          maze.Point{X: 0, Y: 8},
		Addr:          ":8080",
		StoreCapacity: 128,
		GinMode:       "release",
	}
}

// Load reads files (".env" when none are given) and the environment, then
// validates the result. A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	dotenv, err := godotenv.Read(files...)
	if err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}
	return FromLookup(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	})
}

// FromLookup builds a Config from Default overlaid with whatever lookup
// reports, then validates it.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	var err error

	if c.Width, err = intVar(lookup, EnvWidth, c.Width); err != nil {
		return Config{}, err
	}
	if c.Height, err = intVar(lookup, EnvHeight, c.Height); err != nil {
		return Config{}, err
	}
	if c.StoreCapacity, err = intVar(lookup, EnvStoreCapacity, c.StoreCapacity); err != nil {
		return Config{}, err
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		if c.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("%s=%q: %v: %w", EnvSeed, v, err, ErrInvalidConfig)
		}
	}
	if c.Entrance, err = pointVar(lookup, EnvEntrance, c.Entrance); err != nil {
		return Config{}, err
	}
	if c.Exit, err = pointVar(lookup, EnvExit, c.Exit); err != nil {
		return Config{}, err
	}
	c.Algorithm = stringVar(lookup, EnvAlgorithm, c.Algorithm)
	c.Addr = stringVar(lookup, EnvAddr, c.Addr)
	c.GinMode = stringVar(lookup, EnvGinMode, c.GinMode)

	if err = c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks dimensions, the algorithm name, that entrance and exit
// sit on the border, and the server settings.
func (c Config) Validate() error {
	if err := ValidateMaze(c.Width, c.Height, c.Entrance, c.Exit); err != nil {
		return err
	}
	if _, err := generate.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("algorithm %q: %v: %w", c.Algorithm, err, ErrInvalidConfig)
	}
	if c.StoreCapacity <= 0 {
		return fmt.Errorf("store capacity %d: %w", c.StoreCapacity, ErrInvalidConfig)
	}
	switch c.GinMode {
	case "release", "debug", "test":
	default:
		return fmt.Errorf("gin mode %q: %w", c.GinMode, ErrInvalidConfig)
	}
	return nil
}

// ValidateMaze checks a maze shape without allocating it: both sides
// positive, at most MaxCells cells, entrance and exit on the border.
func ValidateMaze(width, height int, entrance, exit maze.Point) error {
	if width <= 0 || height <= 0 || width > MaxCells/height {
		return fmt.Errorf("size %d×%d (max %d cells): %w", width, height, MaxCells, ErrInvalidConfig)
	}
	for _, p := range []struct {
		name string
		pt   maze.Point
	}{{"entrance", entrance}, {"exit", exit}} {
		x, y := p.pt.X, p.pt.Y
		if x < 0 || y < 0 || x >= width || y >= height {
			return fmt.Errorf("%s %v outside %d×%d: %w", p.name, p.pt, width, height, ErrInvalidConfig)
		}
		if x != 0 && y != 0 && x != width-1 && y != height-1 {
			return fmt.Errorf("%s %v not on the border: %w", p.name, p.pt, ErrInvalidConfig)
		}
	}
	return nil
}

// ParsePoint parses "x,y" (spaces allowed around either number).
func ParsePoint(s string) (maze.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return maze.Point{}, fmt.Errorf("point %q: want x,y: %w", s, ErrInvalidConfig)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return maze.Point{}, fmt.Errorf("point %q: %w", s, ErrInvalidConfig)
	}
	return maze.Point{X: x, Y: y}, nil
}

func stringVar(lookup func(string) (string, bool), key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func intVar(lookup func(string) (string, bool), key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: must be an integer: %w", key, v, ErrInvalidConfig)
	}
	return n, nil
}

func pointVar(lookup func(string) (string, bool), key string, def maze.Point) (maze.Point, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	p, err := ParsePoint(v)
	if err != nil {
		return maze.Point{}, fmt.Errorf("%s: %w", key, err)
	}
	return p, nil
}
