// Package diameter picks a start and finish for a maze by approximating the
// diameter of its connection graph: the longest of all shortest paths.
//
// Overview:
//
//   - Select runs two breadth-first sweeps. The first, from the generation
//     seed, finds the cell that finishes last, a cell far from the seed. The
//     second, from that cell, records back-pointers and again takes the cell
//     that finishes last.
//   - The path between the two ends is read off the back-pointers of the
//     second sweep and returned start first.
//
// Accuracy:
//
//   - On a tree (no loops, no bridges) the double sweep is exact.
//   - Loops and bridges make it an approximation; the returned path is still
//     a shortest path between its own two ends.
//
// Complexity:
//
//   - Time:   O(W·H) for each sweep.
//   - Memory: O(W·H) for the back-pointer and depth tables.
//
// Errors:
//
//   - ErrNoSolution: the seed cell is closed, so there is no maze to cross.
//   - bfs.ErrGridNil, bfs.ErrInvalidStart, bfs.ErrCorruptTopology are passed
//     through wrapped.
package diameter
