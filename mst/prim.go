package mst

import (
	"container/heap"

	"github.com/PL-play/kgraph/connectivity"
	"github.com/PL-play/kgraph/core"
)

// Prim computes a minimum spanning tree of undirected, weighted graph g,
// growing outward from an arbitrary root (the smallest vertex id) using a
// min-heap of candidate edges. It repeatedly extracts the minimum-weight
// edge; if both endpoints are already in the tree, the edge is discarded;
// otherwise it is added and its new endpoint's outgoing edges to
// as-yet-unvisited vertices are enqueued.
//
// Complexity: O(E log E).
func Prim(g *core.Graph) ([]core.Edge, error) {
	if g == nil || g.Directed() || !g.Weighted() {
		return nil, ErrInvalidGraph
	}
	ids := g.VertexIDs()
	if len(ids) == 0 || connectivity.ComponentCount(g) != 1 {
		return nil, ErrDisconnected
	}
	if len(ids) == 1 {
		return []core.Edge{}, nil
	}

	inTree := make(map[int]bool, len(ids))
	root := ids[0]
	inTree[root] = true

	pq := &edgeHeap{}
	heap.Init(pq)
	pushUnvisited(pq, g, root, inTree)

	mstEdges := make([]core.Edge, 0, len(ids)-1)
	for pq.Len() > 0 && len(mstEdges) < len(ids)-1 {
		e := heap.Pop(pq).(core.Edge)
		if inTree[e.To] {
			continue
		}
		inTree[e.To] = true
		mstEdges = append(mstEdges, e)
		pushUnvisited(pq, g, e.To, inTree)
	}
	if len(mstEdges) != len(ids)-1 {
		return nil, ErrDisconnected
	}
	return mstEdges, nil
}

func pushUnvisited(pq *edgeHeap, g *core.Graph, from int, inTree map[int]bool) {
	for _, e := range g.Adjacent(from) {
		if !inTree[e.To] {
			heap.Push(pq, e)
		}
	}
}

// edgeHeap is a min-heap of core.Edge ordered by ascending Weight.
type edgeHeap []core.Edge

func (h edgeHeap) Len() int            { return len(h) }
func (h edgeHeap) Less(i, j int) bool  { return h[i].Weight < h[j].Weight }
func (h edgeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *edgeHeap) Push(x interface{}) { *h = append(*h, x.(core.Edge)) }
func (h *edgeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}
