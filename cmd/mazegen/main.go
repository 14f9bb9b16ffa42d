// Command mazegen generates a single perfect maze and writes it as text
// glyphs, a PBM/PNG bitmap or a feature table, or shows it in the terminal.
//
// Defaults come from config (.env, then MAZE_* environment variables);
// flags override them. Without -seed a time-based seed is used and logged,
// so any maze can be reproduced.
//
//	mazegen -width 20 -height 10 -algorithm wilson -seed 42
//	mazegen -format pbm -o maze.pbm
//	mazegen -view
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/katalvlaran/labyrinth/analysis"
	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/generate"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
)

// options is the resolved command line.
type options struct {
	cfg    config.Config
	format string
	output string
	view   bool
	trees  bool
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}
	opts, err := parseFlags(cfg, os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}
	if opts.cfg.Seed == 0 {
		opts.cfg.Seed = time.Now().UnixNano()
		log.Printf("[APP] [INFO] seed %d", opts.cfg.Seed)
	}

	g, err := build(opts.cfg)
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}

	if opts.trees {
		n, err := analysis.SpanningTreeCount(g.Width(), g.Height())
		if err != nil {
			log.Printf("[APP] [INFO] spanning tree count unavailable: %v", err)
		} else {
			log.Printf("[APP] [INFO] %d×%d grid has %.6g perfect mazes", g.Width(), g.Height(), n)
		}
	}

	if opts.view {
		if err := view(g); err != nil {
			log.Fatalf("[APP] [FATAL] %v", err)
		}
		return
	}

	out := io.Writer(os.Stdout)
	if opts.output != "" && opts.output != "-" {
		f, err := os.Create(opts.output)
		if err != nil {
			log.Fatalf("[APP] [FATAL] %v", err)
		}
		defer f.Close()
		out = f
	}
	if err := write(out, g, opts.format); err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}
}

// parseFlags overlays args on cfg. Errors are returned after usage has
// been printed to stderr.
func parseFlags(cfg config.Config, args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("mazegen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := options{cfg: cfg}
	entrance := pointFlag{&opts.cfg.Entrance}
	exit := pointFlag{&opts.cfg.Exit}

	fs.IntVar(&opts.cfg.Width, "width", cfg.Width, "maze width in cells")
	fs.IntVar(&opts.cfg.Height, "height", cfg.Height, "maze height in cells")
	fs.StringVar(&opts.cfg.Algorithm, "algorithm", cfg.Algorithm, "rdfs, prim, aldous-broder, wilson or kruskal")
	fs.Int64Var(&opts.cfg.Seed, "seed", cfg.Seed, "random seed (0 = time based)")
	fs.Var(entrance, "entrance", "entrance cell x,y on the border")
	fs.Var(exit, "exit", "exit cell x,y on the border")
	fs.StringVar(&opts.format, "format", "text", "output format: text, pbm, png or stats")
	fs.StringVar(&opts.output, "o", "-", "output file (- for stdout)")
	fs.BoolVar(&opts.view, "view", false, "show the maze in the terminal instead of writing it")
	fs.BoolVar(&opts.trees, "trees", false, "log how many perfect mazes the grid admits")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return options{}, fmt.Errorf("unexpected arguments %q", fs.Args())
	}
	switch opts.format {
	case "text", "pbm", "png", "stats":
	default:
		return options{}, fmt.Errorf("unknown format %q", opts.format)
	}
	if err := config.ValidateMaze(opts.cfg.Width, opts.cfg.Height, opts.cfg.Entrance, opts.cfg.Exit); err != nil {
		return options{}, err
	}
	return opts, nil
}

// build carves the maze described by cfg and checks it.
func build(cfg config.Config) (*maze.Grid, error) {
	algo, err := generate.ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	g, err := generate.New(cfg.Width, cfg.Height, cfg.Entrance, cfg.Exit, algo, generate.WithSeed(cfg.Seed))
	if err != nil {
		return nil, err
	}
	if err := analysis.Verify(g); err != nil {
		return nil, fmt.Errorf("%v produced an invalid maze: %w", algo, err)
	}
	return g, nil
}

// write renders g to w in format.
func write(w io.Writer, g *maze.Grid, format string) error {
	switch format {
	case "text":
		return render.WriteText(w, g)
	case "pbm":
		return render.WritePBM(w, g)
	case "png":
		return png.Encode(w, render.NewBitmap(g))
	case "stats":
		_, err := analysis.Compute(g).WriteTo(w)
		return err
	}
	return fmt.Errorf("unknown format %q", format)
}

// view shows g on the controlling terminal until the user quits.
func view(g *maze.Grid) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()
	return render.View(screen, g, render.DefaultTheme())
}

// pointFlag parses "x,y" into a maze.Point.
type pointFlag struct{ p *maze.Point }

func (f pointFlag) String() string {
	if f.p == nil {
		return ""
	}
	return f.p.String()
}

func (f pointFlag) Set(s string) error {
	p, err := config.ParsePoint(s)
	if err != nil {
		return err
	}
	*f.p = p
	return nil
}
