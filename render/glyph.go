package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/labyrinth/maze"
)

// Glyphs maps a raw passage mask (N=1, E=2, S=4, W=8) to its box-drawing rune.
var Glyphs = [16]rune{
	' ', '╹', '╺', '┗', '╻', '┃', '┏', '┣',
	'╸', '┛', '━', '┻', '┓', '┫', '┳', '╋',
}

var glyphMask = func() map[rune]maze.Cell {
	m := make(map[rune]maze.Cell, len(Glyphs))
	for i, r := range Glyphs {
		m[r] = maze.Cell(i)
	}
	return m
}()

// Glyph returns the rune for c.
func Glyph(c maze.Cell) rune {
	return Glyphs[c&0x0F]
}

// WriteText writes one line of glyphs per grid row.
func WriteText(w io.Writer, g *maze.Grid) error {
	bw := bufio.NewWriter(w)
	width := g.Width()
	for p, c := range g.All() {
		if _, err := bw.WriteRune(Glyph(c)); err != nil {
			return err
		}
		if p.X == width-1 {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// Text returns the WriteText output as a string.
func Text(g *maze.Grid) string {
	var sb strings.Builder
	sb.Grow(g.Len()*utf8.UTFMax + g.Height())
	_ = WriteText(&sb, g)
	return sb.String()
}

// ParseText rebuilds a grid from WriteText output. Blank lines are skipped;
// a trailing '\r' is tolerated. Entrance and exit are not designated, since
// the text does not say which opening is which.
func ParseText(r io.Reader) (*maze.Grid, error) {
	var (
		cells []maze.Cell
		width = -1
		rows  int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		n := 0
		for _, ch := range line {
			m, ok := glyphMask[ch]
			if !ok {
				return nil, fmt.Errorf("ParseText: row %d col %d %q: %w", rows, n, ch, ErrBadGlyph)
			}
			cells = append(cells, m)
			n++
		}
		if width >= 0 && n != width {
			return nil, fmt.Errorf("ParseText: row %d has %d cells, want %d: %w", rows, n, width, ErrRaggedRows)
		}
		width = n
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ParseText: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("ParseText: empty input: %w", ErrRaggedRows)
	}

	return maze.FromCells(width, rows, cells)
}
