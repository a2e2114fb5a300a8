// Package flow computes maximum flow (Edmonds-Karp over a residual
// graph) and two flavors of bipartite matching: one reduced to max-flow
// over a unit-capacity super-source/super-sink graph, and one computed
// directly via repeated BFS augmenting-path search.
package flow
