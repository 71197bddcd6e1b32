package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/amazing/grid"
)

// glyphs maps a connection mask (bit d set for Direction d) to a box-drawing
// rune. Index 0 is an open cell with no connections.
var glyphs = [1 << grid.Directions]rune{
	'·', '╶', '╵', '└', '╴', '─', '┘', '┴',
	'╷', '┌', '│', '├', '┐', '┬', '┤', '┼',
}

const (
	glyphStart   = '■'
	glyphFinish  = '◆'
	glyphHead    = '●'
	glyphBridgeH = '═'
	glyphBridgeV = '║'
)

// palette colours cycle highlights in turn.
var palette = [...]tcell.Color{
	tcell.NewHexColor(0xa24a7c),
	tcell.NewHexColor(0xfb8891),
	tcell.NewHexColor(0xffc094),
	tcell.NewHexColor(0x92ddc8),
	tcell.NewHexColor(0x65b2bc),
}

// playerColors are the path colours of player 0 and 1.
var playerColors = [...]tcell.Color{
	tcell.NewRGBColor(0xbb, 0, 0),
	tcell.NewRGBColor(0, 0, 0xbb),
}

// glyphAt returns the rune shown for column x, row y. An open cell on layer 1
// is an overpass and covers the corridor below it.
func glyphAt(g *grid.Grid, x, y int) rune {
	if up := g.Cell(g.CellAt(x, y, 1)); up != nil && up.Open {
		if up.Connected(grid.Left) || up.Connected(grid.Right) {
			return glyphBridgeH
		}
		return glyphBridgeV
	}
	c := g.Cell(g.CellAt(x, y, 0))
	if c == nil || !c.Open {
		return ' '
	}
	return glyphs[c.Connections]
}

// drawCell puts the glyph of (x,y) on s.
func drawCell(s tcell.Screen, g *grid.Grid, x, y int, style tcell.Style) {
	s.SetContent(x, y, glyphAt(g, x, y), nil, style)
}
