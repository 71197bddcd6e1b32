// Command amazing grows a two-layer maze in the terminal and lets two players
// race to meet inside it.
//
//	amazing                      play on a maze that fills the terminal
//	amazing -seed 42 -animate 2ms watch a fixed maze grow, then play
//	amazing -stats -width 200    print statistics and exit
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/amazing/builder"
	"github.com/katalvlaran/amazing/chime"
	"github.com/katalvlaran/amazing/convert"
	"github.com/katalvlaran/amazing/grid"
	"github.com/katalvlaran/amazing/maze"
	"github.com/katalvlaran/amazing/tui"
)

func main() {
	def := maze.DefaultConfig()

	seed := flag.Int64("seed", 0, "random seed (0 = from the clock)")
	branch := flag.Float64("branch", def.BranchChance, "chance of growing again from the same cell")
	loop := flag.Float64("loop", def.LoopChance, "chance of connecting into an existing corridor")
	bridge := flag.Float64("bridge", def.BridgeChance, "chance of bridging over a straight corridor")
	width := flag.Int("width", 0, "maze width in cells (0 = fit the terminal)")
	height := flag.Int("height", 0, "maze height in cells (0 = fit the terminal)")
	animate := flag.Duration("animate", 0, "delay per connection while growing (0 = off)")
	showCycles := flag.Bool("cycles", false, "highlight cycles from the start")
	stats := flag.Bool("stats", false, "print maze statistics and exit")
	flag.Parse()

	cfg := maze.Config{
		Width:        *width,
		Height:       *height,
		BranchChance: *branch,
		LoopChance:   *loop,
		BridgeChance: *bridge,
		Seed:         *seed,
	}

	if *stats {
		if cfg.Width == 0 {
			cfg.Width = def.Width
		}
		if cfg.Height == 0 {
			cfg.Height = def.Height
		}
		if err := printStats(os.Stdout, cfg); err != nil {
			log.Fatalf("amazing: %v", err)
		}
		return
	}

	used, err := play(cfg, *animate, *showCycles)
	if err != nil {
		log.Fatalf("amazing: %v", err)
	}
	log.Printf("seed %d", used)
}

// printStats generates one maze and writes its statistics to w.
func printStats(w io.Writer, cfg maze.Config) error {
	m, err := maze.New(cfg)
	if err != nil {
		return err
	}
	found, err := m.Cycles()
	if err != nil {
		return err
	}
	s := convert.Analyze(m.Grid())

	fmt.Fprintf(w, "seed:        %d\n", m.Seed())
	fmt.Fprintf(w, "size:        %dx%d\n", m.Width(), m.Height())
	fmt.Fprintf(w, "open cells:  %d of %d\n", s.Open, s.Cells)
	fmt.Fprintf(w, "connections: %d\n", s.Connections)
	fmt.Fprintf(w, "bridges:     %d\n", s.Bridges)
	fmt.Fprintf(w, "dead ends:   %d\n", s.DeadEnds)
	fmt.Fprintf(w, "components:  %d\n", s.Components)
	fmt.Fprintf(w, "cycle rank:  %d (detected %d)\n", s.CycleRank, len(found))
	fmt.Fprintf(w, "solution:    %d cells\n", len(m.Solution()))
	return nil
}

// play runs the terminal game and returns the seed that was used.
func play(cfg maze.Config, animate time.Duration, showCycles bool) (int64, error) {
	// audio first, so its log line does not land on the screen
	bell, err := chime.New()
	if err != nil {
		// Non-fatal, the game runs without sound
		log.Printf("audio disabled: %v", err)
	}
	defer bell.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return 0, err
	}
	if err := screen.Init(); err != nil {
		return 0, err
	}
	defer screen.Fini()

	if cfg.Width == 0 || cfg.Height == 0 {
		w, h := screen.Size()
		// one row is kept for the status line
		fw, fh, err := grid.Dimensions(w, h-1, 1, 1)
		if err != nil {
			return 0, fmt.Errorf("terminal %dx%d: %w", w, h, err)
		}
		if cfg.Width == 0 {
			cfg.Width = fw
		}
		if cfg.Height == 0 {
			cfg.Height = fh
		}
	}

	var opts []builder.Option
	if animate > 0 {
		screen.Clear()
		opts = append(opts, builder.WithOnLink(tui.Animator(screen, animate)))
	}

	m, err := maze.New(cfg, opts...)
	if err != nil {
		return 0, err
	}

	view, err := tui.New(screen, m, tui.WithNotifier(bell), tui.WithCycles(showCycles))
	if err != nil {
		return m.Seed(), err
	}
	view.Run()

	return m.Seed(), nil
}
