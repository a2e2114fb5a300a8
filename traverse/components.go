package traverse

import "github.com/PL-play/kgraph/core"

// Label assigns a dense, 0-based component id to every vertex of g,
// treating every edge as undirected regardless of g.Directed(): two
// vertices share a label iff an undirected path connects them. This is
// the primitive connectivity.ComponentCount and connectivity.Components
// build on. Kosaraju computes strong connectivity separately, since weak
// and strong connectivity are different questions for directed graphs.
//
// Complexity: O(V + E).
func Label(g *core.Graph) map[int]int {
	// Build a reverse-lookup once so that, for directed graphs, walking
	// "both directions" from a vertex stays O(deg(v)) instead of O(V).
	reverseAdj := buildReverseAdjacency(g)

	labels := make(map[int]int, g.VertexCount())
	next := 0
	for _, start := range g.VertexIDs() {
		if _, seen := labels[start]; seen {
			continue
		}
		labelComponent(g, reverseAdj, start, next, labels)
		next++
	}
	return labels
}

func buildReverseAdjacency(g *core.Graph) map[int][]int {
	rev := make(map[int][]int, g.VertexCount())
	for _, id := range g.VertexIDs() {
		for _, e := range g.Adjacent(id) {
			rev[e.To] = append(rev[e.To], id)
		}
	}
	return rev
}

func labelComponent(g *core.Graph, reverseAdj map[int][]int, start, label int, labels map[int]int) {
	labels[start] = label
	stack := []int{start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range g.Adjacent(id) {
			if _, seen := labels[e.To]; !seen {
				labels[e.To] = label
				stack = append(stack, e.To)
			}
		}
		for _, from := range reverseAdj[id] {
			if _, seen := labels[from]; !seen {
				labels[from] = label
				stack = append(stack, from)
			}
		}
	}
}
