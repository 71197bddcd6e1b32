package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/amazing/builder"
	"github.com/katalvlaran/amazing/grid"
)

// Animator returns a link observer that draws both ends of every new
// connection and pauses for delay, so growth can be watched live. Pass it to
// builder.WithOnLink.
func Animator(s tcell.Screen, delay time.Duration) builder.LinkFunc {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	return func(g *grid.Grid, from, to grid.Index) {
		for _, i := range []grid.Index{from, to} {
			x, y, _ := g.Coordinate(i)
			drawCell(s, g, x, y, style)
		}
		s.Show()
		if delay > 0 {
			time.Sleep(delay)
		}
	}
}
