// Package convert provides adapters from a maze grid.Grid to gonum/graph and
// summary statistics computed on top of them.
//
//   - ToGonum exports the open cells as nodes of a simple.UndirectedGraph,
//     keyed by grid.Index, with one edge per connection pair.
//   - Analyze counts cells, connections, bridges and dead ends, and uses
//     gonum topo for components and the cycle rank E−V+C.
//
// Use convert to hand a generated maze to gonum's path, topo and network
// algorithms without re-implementing them over the grid.
package convert
