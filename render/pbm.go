package render

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/katalvlaran/labyrinth/maze"
)

// Bitmap is a packed 1-bit image. A set bit is black, matching PBM.
// Rows are byte-aligned and most significant bit first.
type Bitmap struct {
	width, height int
	stride        int
	pix           []byte
}

// NewBlankBitmap allocates a width×height bitmap with every pixel white.
// It panics if a side is not positive.
func NewBlankBitmap(width, height int) *Bitmap {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("render: NewBlankBitmap(%d, %d): sides must be positive", width, height))
	}
	stride := (width + 7) / 8
	return &Bitmap{width: width, height: height, stride: stride, pix: make([]byte, stride*height)}
}

// NewBitmap draws g at two pixels per cell plus one for the outer wall.
// Complexity: O(W×H).
func NewBitmap(g *maze.Grid) *Bitmap {
	b := NewBlankBitmap(2*g.Width()+1, 2*g.Height()+1)
	for i := range b.pix {
		b.pix[i] = 0xFF
	}
	b.clearPadding()
	for p, c := range g.All() {
		cx, cy := 2*p.X+1, 2*p.Y+1
		b.Set(cx, cy, false)
		for _, d := range maze.Directions {
			if c.Has(d) {
				dx, dy := d.Offset()
				b.Set(cx+dx, cy+dy, false)
			}
		}
	}
	return b
}

// clearPadding zeroes the unused low bits of each row's last byte.
func (b *Bitmap) clearPadding() {
	pad := b.width % 8
	if pad == 0 {
		return
	}
	mask := byte(0xFF) << (8 - pad)
	for y := 0; y < b.height; y++ {
		b.pix[y*b.stride+b.stride-1] &= mask
	}
}

// Width returns the width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the height in pixels.
func (b *Bitmap) Height() int { return b.height }

// Black reports whether (x,y) is black. Out-of-range pixels read as black.
func (b *Bitmap) Black(x, y int) bool {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return true
	}
	return b.pix[y*b.stride+x/8]&(0x80>>(x%8)) != 0
}

// Set paints (x,y) black or white. Out-of-range writes are ignored.
func (b *Bitmap) Set(x, y int, black bool) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	i, bit := y*b.stride+x/8, byte(0x80>>(x%8))
	if black {
		b.pix[i] |= bit
	} else {
		b.pix[i] &^= bit
	}
}

// ColorModel implements image.Image.
func (b *Bitmap) ColorModel() color.Model { return color.GrayModel }

// Bounds implements image.Image.
func (b *Bitmap) Bounds() image.Rectangle { return image.Rect(0, 0, b.width, b.height) }

// At implements image.Image.
func (b *Bitmap) At(x, y int) color.Color {
	if b.Black(x, y) {
		return color.Gray{Y: 0}
	}
	return color.Gray{Y: 0xFF}
}

// Maze rebuilds the passage masks from a bitmap drawn by NewBitmap.
// Returns ErrNotMaze if a side is even or shorter than 3 pixels.
func (b *Bitmap) Maze() (*maze.Grid, error) {
	if b.width < 3 || b.height < 3 || b.width%2 == 0 || b.height%2 == 0 {
		return nil, fmt.Errorf("Maze: %d×%d: %w", b.width, b.height, ErrNotMaze)
	}
	w, h := (b.width-1)/2, (b.height-1)/2
	cells := make([]maze.Cell, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cx, cy := 2*x+1, 2*y+1
			var c maze.Cell
			for _, d := range maze.Directions {
				dx, dy := d.Offset()
				if !b.Black(cx+dx, cy+dy) {
					c |= d.Mask()
				}
			}
			cells = append(cells, c)
		}
	}
	return maze.FromCells(w, h, cells)
}

//----------------------------------------------------------------------------//
// PBM (P4)
//----------------------------------------------------------------------------//

// EncodePBM writes b as a binary PBM: "P4\n<W> <H>\n" then packed rows.
func EncodePBM(w io.Writer, b *Bitmap) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P4\n%d %d\n", b.width, b.height); err != nil {
		return err
	}
	if _, err := bw.Write(b.pix); err != nil {
		return err
	}
	return bw.Flush()
}

// WritePBM draws g and writes it as PBM.
func WritePBM(w io.Writer, g *maze.Grid) error {
	return EncodePBM(w, NewBitmap(g))
}

// DecodePBM reads a binary PBM. Comments ('#' to end of line) are allowed
// anywhere whitespace is. Plain "P1" streams are not supported.
func DecodePBM(r io.Reader) (*Bitmap, error) {
	br := bufio.NewReader(r)
	magic := make([]byte, 2)
	if _, err := io.ReadFull(br, magic); err != nil {
		return nil, fmt.Errorf("DecodePBM: magic: %w", ErrBadPBM)
	}
	if string(magic) != "P4" {
		return nil, fmt.Errorf("DecodePBM: magic %q: %w", magic, ErrBadPBM)
	}
	width, err := readHeaderInt(br)
	if err != nil {
		return nil, fmt.Errorf("DecodePBM: width: %w", err)
	}
	height, err := readHeaderInt(br)
	if err != nil {
		return nil, fmt.Errorf("DecodePBM: height: %w", err)
	}
	if width <= 0 || height <= 0 || width > 1<<16 || height > 1<<16 {
		return nil, fmt.Errorf("DecodePBM: size %d×%d: %w", width, height, ErrBadPBM)
	}

	b := NewBlankBitmap(width, height)
	if _, err := io.ReadFull(br, b.pix); err != nil {
		return nil, fmt.Errorf("DecodePBM: raster: %v: %w", err, ErrBadPBM)
	}
	// Padding bits past the last column are undefined in PBM.
	b.clearPadding()
	return b, nil
}

// readHeaderInt skips whitespace and comments, reads a decimal number and
// consumes the single whitespace byte that ends it.
func readHeaderInt(br *bufio.Reader) (int, error) {
	var (
		n      int
		digits int
	)
	for {
		c, err := br.ReadByte()
		if err != nil {
			return 0, ErrBadPBM
		}
		switch {
		case c == '#' && digits == 0:
			if _, err := br.ReadString('\n'); err != nil {
				return 0, ErrBadPBM
			}
		case isSpace(c):
			if digits > 0 {
				return n, nil
			}
		case c >= '0' && c <= '9':
			if n > 1<<20 {
				return 0, ErrBadPBM
			}
			n = n*10 + int(c-'0')
			digits++
		default:
			return 0, ErrBadPBM
		}
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}
