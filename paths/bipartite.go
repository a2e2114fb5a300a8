package paths

import "github.com/PL-play/kgraph/core"

// IsBipartite reports whether g's vertices can be 2-colored so that every
// edge joins vertices of different colors. It panics if g is directed:
// bipartiteness is only defined here for undirected graphs, matching the
// `assert(!graph->directed)` precondition in the original source this
// module is grounded on (spec.md §7 classifies such precondition
// violations as fatal, not recoverable errors).
//
// Complexity: O(V + E).
func IsBipartite(g *core.Graph) bool {
	if g.Directed() {
		panic("paths: IsBipartite requires an undirected graph")
	}
	color := make(map[int]int, g.VertexCount())
	for _, start := range g.VertexIDs() {
		if _, seen := color[start]; seen {
			continue
		}
		color[start] = 0
		if !dfsBipartite(g, start, color) {
			return false
		}
	}
	return true
}

func dfsBipartite(g *core.Graph, id int, color map[int]int) bool {
	for _, e := range g.Adjacent(id) {
		if c, seen := color[e.To]; seen {
			if c == color[id] {
				return false
			}
			continue
		}
		color[e.To] = 1 - color[id]
		if !dfsBipartite(g, e.To, color) {
			return false
		}
	}
	return true
}

// Colors returns the 2-coloring IsBipartite computed, split by color: the
// vertices colored 0 and the vertices colored 1. Used by flow's bipartite
// matching, which needs the partition, not just a boolean. Panics under
// the same precondition as IsBipartite, and again if g is not bipartite.
//
// Complexity: O(V + E).
func Colors(g *core.Graph) (side0, side1 []int) {
	if g.Directed() {
		panic("paths: Colors requires an undirected graph")
	}
	color := make(map[int]int, g.VertexCount())
	for _, start := range g.VertexIDs() {
		if _, seen := color[start]; seen {
			continue
		}
		color[start] = 0
		if !dfsBipartite(g, start, color) {
			panic("paths: Colors requires a bipartite graph")
		}
	}
	for _, id := range g.VertexIDs() {
		if color[id] == 0 {
			side0 = append(side0, id)
		} else {
			side1 = append(side1, id)
		}
	}
	return side0, side1
}
