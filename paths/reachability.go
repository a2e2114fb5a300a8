package paths

import "github.com/PL-play/kgraph/core"

// HasPath reports whether a path exists from u to v, via DFS with early
// exit as soon as v is reached. u and v need not be present in g; an
// absent endpoint simply cannot be reached.
//
// Complexity: O(V + E) worst case.
func HasPath(g *core.Graph, u, v int) bool {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return false
	}
	if u == v {
		return true
	}
	visited := make(map[int]bool, g.VertexCount())
	return dfsHasPath(g, u, v, visited)
}

func dfsHasPath(g *core.Graph, cur, target int, visited map[int]bool) bool {
	visited[cur] = true
	for _, e := range g.Adjacent(cur) {
		if e.To == target {
			return true
		}
		if !visited[e.To] && dfsHasPath(g, e.To, target, visited) {
			return true
		}
	}
	return false
}

// OnePath returns one path from u to v found by DFS with early exit on
// reaching v, or (nil, false) if none exists.
//
// Complexity: O(V + E) worst case.
func OnePath(g *core.Graph, u, v int) ([]int, bool) {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return nil, false
	}
	visited := make(map[int]bool, g.VertexCount())
	path := []int{u}
	visited[u] = true
	if u == v {
		return path, true
	}
	if dfsOnePath(g, u, v, visited, &path) {
		return path, true
	}
	return nil, false
}

func dfsOnePath(g *core.Graph, cur, target int, visited map[int]bool, path *[]int) bool {
	for _, e := range g.Adjacent(cur) {
		if visited[e.To] {
			continue
		}
		visited[e.To] = true
		*path = append(*path, e.To)
		if e.To == target {
			return true
		}
		if dfsOnePath(g, e.To, target, visited, path) {
			return true
		}
		*path = (*path)[:len(*path)-1]
	}
	return false
}
