package shortest

import (
	"container/heap"
	"errors"
	"math"

	"github.com/PL-play/kgraph/core"
)

// ErrUnweightedGraph is returned when a weight-consuming algorithm is
// given an unweighted graph.
var ErrUnweightedGraph = errors.New("shortest: graph must be weighted")

// ErrSourceNotFound is returned when the requested source vertex is
// absent from the graph.
var ErrSourceNotFound = errors.New("shortest: source vertex not found")

// ErrNegativeWeight is returned by Dijkstra when any edge in the graph
// has a negative weight; Dijkstra's correctness assumes non-negative
// weights, so this module fails fast instead of returning an undefined
// result. Use Bellman-Ford for graphs with negative weights.
var ErrNegativeWeight = errors.New("shortest: negative edge weight, use Bellman-Ford instead")

// Unreachable is the distance value FloydWarshallResult.Dist reports for a
// vertex pair with no connecting path. Dijkstra and BellmanFord instead
// leave unreached vertices out of their distance maps.
const Unreachable = math.MaxInt

// Dijkstra computes shortest distances from source to every vertex of g
// using a lazy-deletion min-heap: dist[v] is maintained only for reached
// vertices, and a confirmed set guards against stale heap entries. On
// relaxing (u→v,w): if v is unreached, dist[v] is set and v is enqueued;
// else if dist[u]+w improves dist[v], dist[v] is updated and v is
// re-enqueued (the stale entry is skipped later via the confirmed set).
//
// By default Dijkstra explores the whole graph and returns only
// distances, with found always true. WithReturnPath additionally
// populates the predecessor map (a tree root maps to itself); WithTarget
// narrows the run to a single vertex, exiting as soon as it is
// confirmed and reporting found=false if it is unreachable; WithContext
// installs a cancellation context checked once per vertex confirmed.
//
// The returned distance map omits unreached vertices. Returns
// ErrUnweightedGraph, ErrSourceNotFound, ErrNegativeWeight, or
// ctx.Err() if the context is cancelled mid-run.
//
// Complexity: O((V + E) log V), or less with WithTarget.
func Dijkstra(g *core.Graph, source int, opts ...Option) (dist map[int]int, prev map[int]int, found bool, err error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := validateDijkstraInputs(g, source); err != nil {
		return nil, nil, false, err
	}
	if o.hasTarget && !g.HasVertex(o.target) {
		return nil, nil, false, nil
	}

	dist = map[int]int{source: 0}
	if o.returnPath {
		prev = map[int]int{source: source}
	}
	confirmed := make(map[int]bool, g.VertexCount())
	pq := &distHeap{{id: source, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		select {
		case <-o.ctx.Done():
			return nil, nil, false, o.ctx.Err()
		default:
		}

		top := heap.Pop(pq).(distItem)
		u := top.id
		if confirmed[u] {
			continue
		}
		confirmed[u] = true
		if o.hasTarget && u == o.target {
			return dist, prev, true, nil
		}
		for _, e := range g.Adjacent(u) {
			if relaxDijkstra(g, dist, confirmed, pq, u, e) && prev != nil {
				prev[e.To] = u
			}
		}
	}
	if o.hasTarget {
		return nil, nil, false, nil
	}
	return dist, prev, true, nil
}

// relaxDijkstra attempts to improve dist[e.To] via u, pushing a new heap
// entry on success, and reports whether it improved the distance (so the
// caller can update a predecessor map only on an actual relaxation).
func relaxDijkstra(g *core.Graph, dist map[int]int, confirmed map[int]bool, pq *distHeap, u int, e core.Edge) bool {
	v := e.To
	if confirmed[v] {
		return false
	}
	newDist := dist[u] + e.Weight
	cur, reached := dist[v]
	if !reached || newDist < cur {
		dist[v] = newDist
		heap.Push(pq, distItem{id: v, dist: newDist})
		return true
	}
	return false
}

func validateDijkstraInputs(g *core.Graph, source int) error {
	if !g.Weighted() {
		return ErrUnweightedGraph
	}
	if !g.HasVertex(source) {
		return ErrSourceNotFound
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return ErrNegativeWeight
		}
	}
	return nil
}

type distItem struct {
	id, dist int
}

type distHeap []distItem

func (h distHeap) Len() int            { return len(h) }
func (h distHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h distHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x interface{}) { *h = append(*h, x.(distItem)) }
func (h *distHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}
