// Package analysis inspects finished mazes without mutating them.
//
//   - Verify checks that a grid is a perfect maze: symmetric passages,
//     W·H−1 passages forming one connected tree, and outer openings only at
//     the designated entrance and exit, on the side the tie-break selects.
//   - Compute classifies cells by open sides into dead-ends, corridors,
//     junctions and crossroads; Stats.WriteTo prints the classic table.
//   - SpanningTreeCount applies Kirchhoff's matrix-tree theorem to the W×H
//     grid graph; Signature gives a canonical key per spanning tree. Together
//     they back statistical uniformity checks of the generators.
package analysis
