package walks

import "github.com/PL-play/kgraph/core"

// HamiltonPath searches for a Hamiltonian path starting at s: a simple
// path visiting every vertex of g exactly once. It backtracks via plain
// DFS, un-recording the current vertex from the visited set on failure
// before returning to the caller. Returns (nil, false) if s is unknown
// to g or no such path exists.
//
// Complexity: O(V!) worst case.
func HamiltonPath(g *core.Graph, s int) ([]int, bool) {
	if !g.HasVertex(s) {
		return nil, false
	}
	n := g.VertexCount()
	visited := map[int]bool{s: true}
	path := []int{s}
	if hamiltonDFS(g, s, visited, &path, n) {
		return append([]int(nil), path...), true
	}
	return nil, false
}

// HamiltonLoop searches for a Hamiltonian loop starting and ending at s:
// a Hamiltonian path whose final vertex is adjacent back to s. Returns
// (nil, false) if s is unknown to g or no such loop exists.
//
// Complexity: O(V!) worst case.
func HamiltonLoop(g *core.Graph, s int) ([]int, bool) {
	if !g.HasVertex(s) {
		return nil, false
	}
	n := g.VertexCount()
	visited := map[int]bool{s: true}
	path := []int{s}
	if hamiltonLoopDFS(g, s, s, visited, &path, n) {
		result := append([]int(nil), path...)
		result = append(result, s)
		return result, true
	}
	return nil, false
}

func hamiltonDFS(g *core.Graph, cur int, visited map[int]bool, path *[]int, n int) bool {
	if len(visited) == n {
		return true
	}
	for _, e := range g.Adjacent(cur) {
		if visited[e.To] {
			continue
		}
		visited[e.To] = true
		*path = append(*path, e.To)
		if hamiltonDFS(g, e.To, visited, path, n) {
			return true
		}
		*path = (*path)[:len(*path)-1]
		delete(visited, e.To)
	}
	return false
}

func hamiltonLoopDFS(g *core.Graph, start, cur int, visited map[int]bool, path *[]int, n int) bool {
	if len(visited) == n {
		return g.IsConnected(cur, start)
	}
	for _, e := range g.Adjacent(cur) {
		if visited[e.To] {
			continue
		}
		visited[e.To] = true
		*path = append(*path, e.To)
		if hamiltonLoopDFS(g, start, e.To, visited, path, n) {
			return true
		}
		*path = (*path)[:len(*path)-1]
		delete(visited, e.To)
	}
	return false
}
