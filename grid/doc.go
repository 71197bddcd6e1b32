// Package grid stores a layered maze as a flat array of cells and resolves
// directional neighbours, including steps between layers.
//
// What:
//
//   - Grid owns Width×Height×Layers cells, addressed by x + W·y + W·H·z.
//   - Cells carry a 4-bit connection set, a per-direction vertical delta
//     (Downward, Flat, Upward) and a transient traversal State.
//   - Index is a handle into the grid; None marks "no cell".
//   - CellAt is the single bounds check; Neighbor and every other lookup
//     route through it and fail closed by returning None.
//
// Directions are cyclic: Right=0, Up=1, Left=2, Down=3, and d.Opposite() is
// (d+2) mod 4. Up decreases y, Down increases y.
//
// Pairing invariant (maintained by package builder, never by Grid itself):
//
//	if A has bit d with vertical v, then Neighbor(A, d, v) has bit
//	d.Opposite() with vertical v.Invert().
//
// Complexity:
//
//   - New:        O(W·H·Layers) time and memory.
//   - CellAt/Neighbor/Cell/Coordinate: O(1).
//   - ResetTraversal: O(W·H·Layers).
//
// Errors:
//
//   - ErrEmptyGrid:   width or height below 1.
//   - ErrBadViewport: non-positive pixel or cell size in Dimensions.
package grid
