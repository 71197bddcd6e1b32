// Package amazing grows two-layer mazes, picks a start and finish across
// them and finds their loops.
//
// What is amazing?
//
//	A small maze toolkit built on a grid graph:
//		• Grid: flat 3-D cell storage with a bounds-checked neighbour lookup
//		• Growth: randomized multi-strand generation with loops and bridges
//		• Traversal: generic BFS with hook context objects
//		• Diameter: two-sweep start/finish selection
//		• Cycles: back-edge detection, reconstruction and breaking
//		• A terminal duel for two players, with a win chime
//
// Under the hood, everything is organized in subpackages:
//
//	grid/  Cell, Direction, Vertical, State, Index and the Grid itself
//	builder/  Generate, Link, Unlink and functional options
//	bfs/  Traverse[T], Hooks[T], Tree and PathTo
//	diameter/  Select
//	cycles/  Detect, Break
//	maze/  the Maze facade and Config
//	convert/  gonum/graph export and Analyze statistics
//	game/  two-player duel rules
//	tui/  tcell renderer and event loop
//	chime/  beep arpeggio
//	cmd/amazing  the command
//
// Quick ASCII example, a bridge carries one corridor over another:
//
//	    │
//	  ──═──
//	    │
//
// The horizontal corridor climbs onto layer 1 over the vertical one and
// comes back down on the far side; the two never meet.
//
//	go run github.com/katalvlaran/amazing/cmd/amazing -seed 42
package amazing
