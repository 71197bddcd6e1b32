// Package cycles finds loops in a maze so they can be shown or broken.
//
// Detect runs one breadth-first traversal and treats every connection that
// leads back into an already processed cell as a back-edge. Each back-edge
// closes exactly one cycle, rebuilt from the two back-pointer chains up to
// their lowest common ancestor. Not every simple cycle is listed, but the
// reported ones form a basis: breaking each of them at its back-edge leaves
// the reachable component a spanning tree.
//
// Complexity:
//
//   - Time:   O(W·H + C·L)   (C=#cycles, L=avg cycle length)
//   - Memory: O(W·H)         (back-pointers, depths, cycle storage)
package cycles
