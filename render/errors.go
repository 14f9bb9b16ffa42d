package render

import "errors"

// Sentinel errors for decoders.
var (
	// ErrBadGlyph indicates a rune that is not in the glyph table.
	ErrBadGlyph = errors.New("render: unknown glyph")
	// ErrRaggedRows indicates text rows of differing widths, or no rows at all.
	ErrRaggedRows = errors.New("render: rows differ in width")
	// ErrBadPBM indicates a malformed or unsupported PBM stream.
	ErrBadPBM = errors.New("render: malformed PBM")
	// ErrNotMaze indicates a bitmap whose shape cannot hold a maze.
	ErrNotMaze = errors.New("render: bitmap is not a maze image")
)
