package paths

import "github.com/PL-play/kgraph/core"

// EnumerateCyclePaths returns one cycle per detected back-edge,
// reconstructed from the recorded parent map, expressed as a vertex
// sequence that closes on the repeating vertex (first and last element
// equal).
//
// For undirected graphs this fixes a bug present in the C original this
// module is grounded on: that implementation's on-path membership test
// was inverted, so a vertex could be falsely reported as "on the current
// path" after DFS had already returned from one of its branches. The
// corrected algorithm (spec.md §9): mark the vertex globally visited on
// entry, record its parent in a path map, emit a cycle on any edge to a
// vertex present in that path map other than the immediate parent, and
// remove the vertex from the path map when recursion returns from it.
//
// Complexity: O(V + E + C*L) where C is the number of cycles found and L
// their average length.
func EnumerateCyclePaths(g *core.Graph) [][]int {
	if g.Directed() {
		return enumerateCyclesDirected(g)
	}
	return enumerateCyclesUndirected(g)
}

func enumerateCyclesUndirected(g *core.Graph) [][]int {
	visited := make(map[int]bool, g.VertexCount())
	onPath := make(map[int]int, g.VertexCount()) // vertex -> its parent while on path
	var cycles [][]int

	var visit func(id, parent int)
	visit = func(id, parent int) {
		visited[id] = true
		onPath[id] = parent
		for _, e := range g.Adjacent(id) {
			if e.To == parent {
				continue
			}
			if p, onStack := onPath[e.To]; onStack {
				cycles = append(cycles, reconstructCycle(onPath, id, e.To))
				_ = p
				continue
			}
			if !visited[e.To] {
				visit(e.To, id)
			}
		}
		delete(onPath, id)
	}

	for _, start := range g.VertexIDs() {
		if !visited[start] {
			visit(start, -1)
		}
	}
	return cycles
}

func enumerateCyclesDirected(g *core.Graph) [][]int {
	visited := make(map[int]bool, g.VertexCount())
	onPath := make(map[int]int, g.VertexCount())
	var cycles [][]int

	var visit func(id, parent int)
	visit = func(id, parent int) {
		visited[id] = true
		onPath[id] = parent
		for _, e := range g.Adjacent(id) {
			if _, onStack := onPath[e.To]; onStack {
				cycles = append(cycles, reconstructCycle(onPath, id, e.To))
				continue
			}
			if !visited[e.To] {
				visit(e.To, id)
			}
		}
		delete(onPath, id)
	}

	for _, start := range g.VertexIDs() {
		if !visited[start] {
			visit(start, -1)
		}
	}
	return cycles
}

// reconstructCycle walks the path map backward from id until it reaches
// closeAt, then appends closeAt again to close the cycle.
func reconstructCycle(onPath map[int]int, id, closeAt int) []int {
	var rev []int
	cur := id
	for {
		rev = append(rev, cur)
		if cur == closeAt {
			break
		}
		cur = onPath[cur]
	}
	out := make([]int, len(rev)+1)
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}
	out[len(rev)] = closeAt
	return out
}
