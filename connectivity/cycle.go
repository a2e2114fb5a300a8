package connectivity

import "github.com/PL-play/kgraph/core"

// HasCycle reports whether g contains a cycle. For undirected graphs this
// is a DFS that flags a back-edge to any visited vertex other than the
// immediate parent (so the two mirror records of a single logical edge
// never falsely report a 2-cycle). For directed graphs it maintains an
// explicit "currently on the recursion stack" set and flags any edge into
// that set.
//
// Complexity: O(V + E).
func HasCycle(g *core.Graph) bool {
	if g.Directed() {
		return hasCycleDirected(g)
	}
	return hasCycleUndirected(g)
}

func hasCycleUndirected(g *core.Graph) bool {
	visited := make(map[int]bool, g.VertexCount())
	for _, start := range g.VertexIDs() {
		if !visited[start] {
			if dfsCycleUndirected(g, start, -1, visited) {
				return true
			}
		}
	}
	return false
}

func dfsCycleUndirected(g *core.Graph, id, parent int, visited map[int]bool) bool {
	visited[id] = true
	for _, e := range g.Adjacent(id) {
		if e.To == parent {
			continue
		}
		if visited[e.To] {
			return true
		}
		if dfsCycleUndirected(g, e.To, id, visited) {
			return true
		}
	}
	return false
}

func hasCycleDirected(g *core.Graph) bool {
	visited := make(map[int]bool, g.VertexCount())
	onStack := make(map[int]bool, g.VertexCount())
	for _, start := range g.VertexIDs() {
		if !visited[start] {
			if dfsCycleDirected(g, start, visited, onStack) {
				return true
			}
		}
	}
	return false
}

func dfsCycleDirected(g *core.Graph, id int, visited, onStack map[int]bool) bool {
	visited[id] = true
	onStack[id] = true
	for _, e := range g.Adjacent(id) {
		if onStack[e.To] {
			return true
		}
		if !visited[e.To] {
			if dfsCycleDirected(g, e.To, visited, onStack) {
				return true
			}
		}
	}
	onStack[id] = false
	return false
}
