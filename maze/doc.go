// Package maze ties the core together: it allocates a grid, grows a maze
// into it, selects the solution path and answers queries about the result.
//
// A Maze is built once by New and never regrown. It is not safe for
// concurrent use; traversals over its grid reset shared per-cell state.
//
//	m, err := maze.New(maze.DefaultConfig())
//	start, finish := m.Start(), m.Finish()
//
// Ad hoc analysis runs through package bfs on m.Grid().
package maze
