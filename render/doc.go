// Package render turns a carved maze.Grid into something a person can look at.
//
// Three adapters are provided:
//
//   - Glyphs / WriteText / Text: one box-drawing rune per cell, indexed by the
//     raw 4-bit passage mask, one grid row per line. ParseText reverses it.
//   - Bitmap / EncodePBM / DecodePBM: a (2W+1)×(2H+1) black-and-white image
//     where every cell is a white pixel at (2x+1, 2y+1) and each open side
//     whitens the wall pixel between the cell and its neighbour (or the outer
//     wall for entrance and exit). Posts at (even, even) are always black.
//     Bitmap implements image.Image, so the standard image encoders work too.
//   - Draw / View: paint the glyphs onto a tcell.Screen, with the entrance
//     and exit highlighted, and run a minimal key loop around it.
//
// Renderers never mutate the grid.
package render
