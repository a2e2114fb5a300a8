// Package connectivity answers structural questions about a core.Graph:
// how many components it has, which vertices sit in which component,
// whether it contains a cycle, which edges are bridges, which vertices
// are cut points (articulation points), and — for directed graphs — its
// strongly connected components via Kosaraju's algorithm.
//
// Bridges and cut points are defined here only for undirected graphs; the
// original C source this module is grounded on stubs the directed variants
// with an assertion failure, and spec.md documents this as an accepted
// gap. Directed strong-connectivity analysis (SCC) covers the directed
// analogue instead: an edge between two different SCCs is a directed cut
// edge in the sense that removing it cannot reconnect those components.
package connectivity
