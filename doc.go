// Package labyrinth generates perfect mazes on rectangular grids: every
// cell reachable, exactly one path between any two cells.
//
// 🚀 What is in the box?
//
//	A small, deterministic maze toolkit:
//		• Core model: a flat grid of 4-bit passage cells with checked
//		  coordinate math and symmetric carving
//		• Generators: randomized DFS, randomized Prim, Aldous–Broder,
//		  Wilson (loop-erased walks) and randomized Kruskal
//		• Analysis: perfect-maze verification, dead-end/corridor/junction
//		  statistics, Kirchhoff spanning-tree counts
//		• Rendering: box-drawing text, PBM/PNG bitmaps, tcell terminal view
//		• Binaries: mazegen (CLI) and mazeserver (HTTP)
//
// ✨ Why labyrinth?
//
//   - Reproducible – same seed, same maze, for every algorithm
//   - Uniform where it matters – Aldous–Broder and Wilson sample spanning
//     trees uniformly; tests check it against the exact tree count
//   - Pure Go core – the maze, generate and analysis packages have no
//     third-party imports
//
// Packages:
//
//	maze/      — Grid, Cell, Direction, Point; passages and outer openings
//	generate/  — the five generators, seeding options, Run/New
//	analysis/  — Verify, Stats, SpanningTreeCount, Signature
//	render/    — glyph text, PBM bitmap, terminal drawing
//	config/    — .env + environment configuration for the binaries
//	server/    — gin HTTP API with an in-memory maze store
//
// Quick example (5×1, entrance west, exit east):
//
//	g, _ := generate.New(5, 1, maze.Point{X: 0}, maze.Point{X: 4}, generate.AlgoWilson)
//	render.WriteText(os.Stdout, g) // ━━━━━
//
//	go install github.com/katalvlaran/labyrinth/cmd/mazegen@latest
package labyrinth
