// Package bfs provides the breadth-first traversal engine shared by every
// maze analysis: diameter selection, shortest-path trees and cycle detection
// are all the same walk with different hooks.
//
// What
//
//   - Traverse walks the connection graph of a grid.Grid from a start cell,
//     following each set connection bit together with its vertical delta.
//   - Three hooks fire per run, each receiving the caller's context object:
//   - OnVisit  (cell popped from the frontier)
//   - OnEdge   (every followed connection, whatever the neighbour's state)
//   - OnFinish (cell marked Processed)
//   - Every reached cell moves Undiscovered → Discovered → Processed once.
//   - Tree is a ready-made context recording first-discovery back-pointers,
//     depths and the last finished cell.
//
// Why
//
//   - The last cell finished by a BFS is one of the farthest from the start,
//     which is what the two-pass diameter heuristic needs.
//   - An edge that reaches an already processed cell closes a cycle.
//
// State
//
//	The engine keeps no state between calls. It does reset the State marker
//	of every cell before it starts, so a run invalidates the markers of the
//	previous one and two runs over one grid cannot be interleaved.
//
// Hook context
//
//	Hooks[T] takes the context explicitly instead of capturing it:
//
//		tree := bfs.NewTree(g)
//		_, err := bfs.Traverse(g, start, tree, bfs.TreeHooks())
//
// Determinism
//
//	Connections are scanned Right, Up, Left, Down. Given the same grid the
//	visit order is fully reproducible.
//
// Complexity (V = reachable open cells)
//
//   - Time:   O(V + cells in grid) (4 connections per cell, plus the reset)
//   - Memory: O(V) for the frontier and Result.Order
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrInvalidStart     if start is None or not a cell of the grid.
//   - ErrCorruptTopology  if a set connection bit leads off the grid.
package bfs
