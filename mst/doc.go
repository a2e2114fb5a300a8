// Package mst computes minimum spanning trees of undirected, weighted,
// single-component graphs via Kruskal's algorithm (sort edges, union-find
// to reject cycle-forming edges) and Prim's algorithm (grow outward from
// an arbitrary root using a min-heap of candidate edges).
//
// Both require the graph to be undirected, weighted, and connected;
// otherwise they return ErrInvalidGraph or ErrDisconnected. Kruskal and
// Prim are expected to produce trees of equal total weight, though not
// necessarily the same edge set when weights tie.
package mst
