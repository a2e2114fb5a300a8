package shortest

import "github.com/PL-play/kgraph/core"

// BellmanFord computes shortest distances from source to every reachable
// vertex of g, tolerating negative edge weights. It performs |V|-1
// relaxation rounds over every edge, then a final round to detect any
// further improvement, which signals a reachable negative-weight cycle.
// On a negative cycle it returns (nil, nil, true, nil): callers must
// check the bool before trusting a nil-error, non-nil map as "no path"
// rather than "negative cycle invalidated everything downstream".
//
// By default BellmanFord returns only distances; WithReturnPath
// additionally populates the predecessor map (a tree root maps to
// itself). WithContext installs a cancellation context checked once per
// relaxation round. WithTarget is not meaningful here — Bellman-Ford
// must scan every edge each round regardless of which vertex the caller
// cares about — and is ignored if given.
//
// Returns ErrUnweightedGraph, ErrSourceNotFound, or ctx.Err() if the
// context is cancelled mid-run.
//
// Complexity: O(V * E).
func BellmanFord(g *core.Graph, source int, opts ...Option) (dist map[int]int, prev map[int]int, negativeCycle bool, err error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.Weighted() {
		return nil, nil, false, ErrUnweightedGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, false, ErrSourceNotFound
	}

	edges := g.Edges()
	dist = make(map[int]int, g.VertexCount())
	for _, id := range g.VertexIDs() {
		dist[id] = Unreachable
	}
	dist[source] = 0

	if o.returnPath {
		prev = map[int]int{source: source}
	}

	n := g.VertexCount()
	for i := 0; i < n-1; i++ {
		select {
		case <-o.ctx.Done():
			return nil, nil, false, o.ctx.Err()
		default:
		}

		changed := false
		for _, e := range edges {
			if dist[e.From] == Unreachable {
				continue
			}
			if nd := dist[e.From] + e.Weight; nd < dist[e.To] {
				dist[e.To] = nd
				if prev != nil {
					prev[e.To] = e.From
				}
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	for _, e := range edges {
		if dist[e.From] == Unreachable {
			continue
		}
		if dist[e.From]+e.Weight < dist[e.To] {
			return nil, nil, true, nil
		}
	}

	for id, d := range dist {
		if d == Unreachable {
			delete(dist, id)
			if prev != nil {
				delete(prev, id)
			}
		}
	}
	return dist, prev, false, nil
}
