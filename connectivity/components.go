package connectivity

import (
	"github.com/PL-play/kgraph/core"
	"github.com/PL-play/kgraph/traverse"
)

// ComponentCount returns the number of weakly-connected components of g
// (for directed graphs, edge direction is ignored).
//
// Complexity: O(V + E).
func ComponentCount(g *core.Graph) int {
	labels := traverse.Label(g)
	max := -1
	for _, l := range labels {
		if l > max {
			max = l
		}
	}
	return max + 1
}

// Components returns a map from dense component id to the ascending-order
// list of its member vertex ids.
//
// Complexity: O(V log V + E).
func Components(g *core.Graph) map[int][]int {
	labels := traverse.Label(g)
	out := make(map[int][]int)
	for _, id := range g.VertexIDs() {
		out[labels[id]] = append(out[labels[id]], id)
	}
	return out
}
