package shortest

import "github.com/PL-play/kgraph/core"

// FloydWarshallResult holds the dense all-pairs distance table and the
// next-hop table needed to reconstruct a shortest path between any two
// vertices without re-running the search.
type FloydWarshallResult struct {
	ids  []int
	idx  map[int]int
	dist [][]int
	next [][]int
}

// FloydWarshall computes shortest distances between every pair of
// vertices of weighted graph g by dynamic programming over intermediate
// vertices: dist[u][v] is repeatedly relaxed through each candidate
// intermediate k. Tolerates negative edge weights; detects negative
// cycles via a negative entry on the distance table's diagonal after all
// rounds complete, returning (nil, true, nil) in that case.
//
// Returns ErrUnweightedGraph.
//
// Complexity: O(V^3) time, O(V^2) space.
func FloydWarshall(g *core.Graph) (result *FloydWarshallResult, negativeCycle bool, err error) {
	if !g.Weighted() {
		return nil, false, ErrUnweightedGraph
	}

	ids := g.VertexIDs()
	n := len(ids)
	idx := make(map[int]int, n)
	for i, id := range ids {
		idx[id] = i
	}

	dist := make([][]int, n)
	next := make([][]int, n)
	for i := range dist {
		dist[i] = make([]int, n)
		next[i] = make([]int, n)
		for j := range dist[i] {
			if i == j {
				dist[i][j] = 0
			} else {
				dist[i][j] = Unreachable
			}
			next[i][j] = -1
		}
	}
	for _, e := range g.Edges() {
		i, j := idx[e.From], idx[e.To]
		if e.Weight < dist[i][j] {
			dist[i][j] = e.Weight
			next[i][j] = j
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if dist[i][k] == Unreachable {
				continue
			}
			for j := 0; j < n; j++ {
				if dist[k][j] == Unreachable {
					continue
				}
				if nd := dist[i][k] + dist[k][j]; nd < dist[i][j] {
					dist[i][j] = nd
					next[i][j] = next[i][k]
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		if dist[i][i] < 0 {
			return nil, true, nil
		}
	}

	return &FloydWarshallResult{ids: ids, idx: idx, dist: dist, next: next}, false, nil
}

// Dist reports the shortest distance from u to v, or (Unreachable, false)
// if either vertex is unknown to the result or no path connects them.
func (r *FloydWarshallResult) Dist(u, v int) (int, bool) {
	i, ok := r.idx[u]
	if !ok {
		return Unreachable, false
	}
	j, ok := r.idx[v]
	if !ok {
		return Unreachable, false
	}
	d := r.dist[i][j]
	return d, d != Unreachable
}

// Path reconstructs the shortest path from u to v via the next-hop table,
// returning (nil, false) if no path exists.
func (r *FloydWarshallResult) Path(u, v int) ([]int, bool) {
	i, ok := r.idx[u]
	if !ok {
		return nil, false
	}
	j, ok := r.idx[v]
	if !ok {
		return nil, false
	}
	if r.next[i][j] == -1 && u != v {
		return nil, false
	}

	path := []int{u}
	cur := i
	for cur != j {
		cur = r.next[cur][j]
		path = append(path, r.ids[cur])
	}
	return path, true
}
