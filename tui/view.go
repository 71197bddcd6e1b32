// Package tui draws a maze in a terminal with tcell and runs the two-player
// duel on it.
//
// Every maze cell is one terminal character: a box-drawing glyph chosen from
// the connection mask, a double line where an overpass crosses a corridor,
// ■ for the start and ◆ for the finish. The bottom row is a status line.
//
// Keys: arrows and Backspace move player 0, d w a s and q move player 1,
// c toggles cycle highlighting, Esc or Ctrl-C quits.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/amazing/cycles"
	"github.com/katalvlaran/amazing/game"
	"github.com/katalvlaran/amazing/grid"
	"github.com/katalvlaran/amazing/maze"
)

// Notifier is told once when the players meet.
type Notifier interface {
	Play()
}

// Option customizes a View.
type Option func(*View)

// WithNotifier plays n when the duel is won. Panics on nil.
func WithNotifier(n Notifier) Option {
	if n == nil {
		panic("tui: WithNotifier(nil)")
	}
	return func(v *View) {
		v.notify = n
	}
}

// WithCycles sets whether cycles are highlighted initially.
func WithCycles(show bool) Option {
	return func(v *View) {
		v.showCycles = show
	}
}

// View renders one maze and owns its duel.
type View struct {
	screen tcell.Screen
	m      *maze.Maze
	duel   *game.Duel
	notify Notifier

	cycles      []cycles.Cycle
	cycleColors []tcell.Color
	showCycles  bool
	// rotates the palette across successive highlights
	colorTurn int

	celebrated bool
}

// New prepares a view of m on s. s must already be initialised.
func New(s tcell.Screen, m *maze.Maze, opts ...Option) (*View, error) {
	duel, err := game.NewDuel(m.Grid(), m.Start(), m.Finish())
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	found, err := m.Cycles()
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}

	v := &View{screen: s, m: m, duel: duel, cycles: found}
	for _, opt := range opts {
		opt(v)
	}
	for range found {
		v.cycleColors = append(v.cycleColors, v.nextColor())
	}
	return v, nil
}

// nextColor returns the next palette colour.
func (v *View) nextColor() tcell.Color {
	c := palette[v.colorTurn%len(palette)]
	v.colorTurn++
	return c
}

// Duel returns the game shown by the view.
func (v *View) Duel() *game.Duel {
	return v.duel
}

// Draw repaints the whole screen.
func (v *View) Draw() {
	g := v.m.Grid()
	v.screen.Clear()

	base := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			drawCell(v.screen, g, x, y, base)
		}
	}

	if v.showCycles {
		for k, cy := range v.cycles {
			v.drawThin(cy.Cells, v.cycleColors[k])
		}
	}
	for p := 0; p < game.Players; p++ {
		v.drawPath(v.duel.Path(p), playerColors[p])
	}

	v.mark(v.m.Start(), glyphStart)
	v.mark(v.m.Finish(), glyphFinish)
	v.drawStatus()
	v.screen.Show()
}

// drawThin recolours the cells of a highlighted path.
func (v *View) drawThin(path []grid.Index, color tcell.Color) {
	g := v.m.Grid()
	style := tcell.StyleDefault.Foreground(color)
	for _, i := range path {
		x, y, _ := g.Coordinate(i)
		drawCell(v.screen, g, x, y, style)
	}
}

// drawPath paints a player's trail and head.
func (v *View) drawPath(path []grid.Index, color tcell.Color) {
	v.drawThin(path, color)
	if len(path) > 1 {
		x, y, _ := v.m.Grid().Coordinate(path[len(path)-1])
		v.screen.SetContent(x, y, glyphHead, nil, tcell.StyleDefault.Foreground(color).Bold(true))
	}
}

// mark draws r over the cell of i.
func (v *View) mark(i grid.Index, r rune) {
	x, y, _ := v.m.Grid().Coordinate(i)
	v.screen.SetContent(x, y, r, nil, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
}

// drawStatus writes the bottom line.
func (v *View) drawStatus() {
	msg := fmt.Sprintf("seed %d  cycles %d  [c] highlight  [esc] quit", v.m.Seed(), len(v.cycles))
	if v.duel.Won() {
		msg = "you met! [esc] quit"
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	for k, r := range []rune(msg) {
		v.screen.SetContent(k, v.m.Height(), r, nil, style)
	}
}

// Run draws the view and processes events until the user quits. PollEvent
// runs on its own goroutine; all drawing and game state stay on the caller's.
// The caller owns the screen and must Fini it afterwards.
func (v *View) Run() {
	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	v.Draw()
	for ev := range events {
		if !v.handle(ev) {
			return
		}
		v.Draw()
	}
}

// handle applies one event and reports whether to keep running.
func (v *View) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// handleKey maps a key press to a game action.
func (v *View) handleKey(k tcell.Key, r rune) bool {
	switch k {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRight:
		v.duel.Move(0, grid.Right)
	case tcell.KeyUp:
		v.duel.Move(0, grid.Up)
	case tcell.KeyLeft:
		v.duel.Move(0, grid.Left)
	case tcell.KeyDown:
		v.duel.Move(0, grid.Down)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		v.duel.Backtrack(0)
	case tcell.KeyRune:
		switch r {
		case 'd':
			v.duel.Move(1, grid.Right)
		case 'w':
			v.duel.Move(1, grid.Up)
		case 'a':
			v.duel.Move(1, grid.Left)
		case 's':
			v.duel.Move(1, grid.Down)
		case 'q':
			v.duel.Backtrack(1)
		case 'c':
			v.showCycles = !v.showCycles
		}
	}

	if v.duel.Won() && !v.celebrated {
		v.celebrated = true
		if v.notify != nil {
			v.notify.Play()
		}
	}
	return true
}
