package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/katalvlaran/labyrinth/maze"
)

// Theme holds the styles used by Draw.
type Theme struct {
	Wall   tcell.Style // ordinary cells
	Portal tcell.Style // entrance and exit
	Status tcell.Style // the footer line drawn by View
}

// DefaultTheme draws green passages with yellow portals.
func DefaultTheme() Theme {
	return Theme{
		Wall:   tcell.StyleDefault.Foreground(tcell.ColorGreen),
		Portal: tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		Status: tcell.StyleDefault.Foreground(tcell.ColorGray),
	}
}

// Draw paints g with its top-left cell at (x0, y0). Cells falling outside
// the screen are clipped. It does not call Show.
func Draw(s tcell.Screen, g *maze.Grid, x0, y0 int, theme Theme) {
	sw, sh := s.Size()
	in, out := g.EntranceIndex(), g.ExitIndex()
	i := 0
	for p, c := range g.All() {
		x, y := x0+p.X, y0+p.Y
		if x >= 0 && y >= 0 && x < sw && y < sh {
			style := theme.Wall
			if i == in || i == out {
				style = theme.Portal
			}
			s.SetContent(x, y, Glyph(c), nil, style)
		}
		i++
	}
}

// View shows g centred on s until Escape, Ctrl-C or 'q' is pressed, and
// redraws on resize. The caller owns s: it must be initialised and is not
// finalised here.
func View(s tcell.Screen, g *maze.Grid, theme Theme) error {
	if s == nil || g == nil {
		return fmt.Errorf("View: nil screen or grid")
	}
	status := fmt.Sprintf("%d×%d  q: quit", g.Width(), g.Height())

	redraw := func() {
		s.Clear()
		sw, sh := s.Size()
		x0 := max((sw-g.Width())/2, 0)
		y0 := max((sh-g.Height()-1)/2, 0)
		Draw(s, g, x0, y0, theme)
		for i, r := range []rune(status) {
			s.SetContent(i, sh-1, r, nil, theme.Status)
		}
		s.Show()
	}
	redraw()

	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return nil
			}
		case *tcell.EventResize:
			s.Sync()
			redraw()
		}
	}
}
