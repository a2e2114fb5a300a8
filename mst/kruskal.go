package mst

import (
	"errors"
	"sort"

	"github.com/PL-play/kgraph/core"
	"github.com/PL-play/kgraph/connectivity"
)

// ErrInvalidGraph is returned when g is nil, directed, or unweighted.
var ErrInvalidGraph = errors.New("mst: graph must be undirected and weighted")

// ErrDisconnected is returned when g does not have exactly one connected
// component (including the empty graph).
var ErrDisconnected = errors.New("mst: graph is not connected")

// Kruskal computes a minimum spanning tree of undirected, weighted graph
// g. It materializes the logical edge list (dedup by From < To), sorts it
// ascending by weight, and walks it in order, accepting an edge iff its
// endpoints are in different disjoint-set-union sets. The returned edges
// are caller-owned copies independent of g.
//
// Complexity: O(E log E).
func Kruskal(g *core.Graph) ([]core.Edge, error) {
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

	logical := make([]core.Edge, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		if e.From < e.To {
			logical = append(logical, e)
		}
	}
	sort.SliceStable(logical, func(i, j int) bool {
		return logical[i].Weight < logical[j].Weight
	})

	dsu := newDisjointSet(ids)
	mstEdges := make([]core.Edge, 0, len(ids)-1)
	for _, e := range logical {
		if dsu.union(e.From, e.To) {
			mstEdges = append(mstEdges, e)
			if len(mstEdges) == len(ids)-1 {
				break
			}
		}
	}
	if len(mstEdges) != len(ids)-1 {
		return nil, ErrDisconnected
	}
	return mstEdges, nil
}
