package connectivity

import (
	"errors"

	"github.com/PL-play/kgraph/core"
)

// ErrUndirectedGraph is returned by SCC when given an undirected graph;
// strong connectivity is only a meaningful question for directed graphs.
var ErrUndirectedGraph = errors.New("connectivity: SCC requires a directed graph")

// SCC computes the strongly connected components of directed graph g
// using Kosaraju's algorithm: a DFS on the reverse graph records
// post-order, then a DFS on the original graph in reverse-post-order
// assigns a fresh component id each time a new DFS tree starts. Returns a
// map from dense component id to its ascending-order member list.
//
// Complexity: O(V + E).
func SCC(g *core.Graph) (map[int][]int, error) {
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}

	// Phase 1: DFS on the reverse graph, recording post-order.
	rev := g.Reverse()
	visited := make(map[int]bool, g.VertexCount())
	postOrder := make([]int, 0, g.VertexCount())
	for _, start := range rev.VertexIDs() {
		if !visited[start] {
			dfsPostOrderSCC(rev, start, visited, &postOrder)
		}
	}

	// Phase 2: DFS on the original graph, visiting roots in reverse
	// post-order, assigning a fresh component id per new tree.
	labels := make(map[int]int, g.VertexCount())
	nextLabel := 0
	for i := len(postOrder) - 1; i >= 0; i-- {
		start := postOrder[i]
		if _, seen := labels[start]; seen {
			continue
		}
		dfsAssignSCC(g, start, nextLabel, labels)
		nextLabel++
	}

	out := make(map[int][]int, nextLabel)
	for _, id := range g.VertexIDs() {
		out[labels[id]] = append(out[labels[id]], id)
	}
	return out, nil
}

func dfsPostOrderSCC(g *core.Graph, id int, visited map[int]bool, order *[]int) {
	visited[id] = true
	for _, e := range g.Adjacent(id) {
		if !visited[e.To] {
			dfsPostOrderSCC(g, e.To, visited, order)
		}
	}
	*order = append(*order, id)
}

func dfsAssignSCC(g *core.Graph, id, label int, labels map[int]int) {
	labels[id] = label
	for _, e := range g.Adjacent(id) {
		if _, seen := labels[e.To]; !seen {
			dfsAssignSCC(g, e.To, label, labels)
		}
	}
}
