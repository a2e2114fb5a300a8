package topo

import (
	"context"
	"errors"

	"github.com/PL-play/kgraph/core"
)

// ErrUndirectedGraph is returned when Kahn is given an undirected graph:
// topological order is only defined for directed graphs.
var ErrUndirectedGraph = errors.New("topo: graph must be directed")

// Option configures optional behavior for Kahn.
type Option func(*options)

type options struct {
	ctx context.Context
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext sets a cancellation context for Kahn's main loop. Passing
// a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Kahn computes a topological ordering of directed graph g. It seeds a
// queue with every vertex of in-degree 0, then repeatedly dequeues a
// vertex, appends it to the result, and decrements the in-degree counter
// of each out-neighbor, enqueuing any that reach zero. If the result is
// shorter than g's vertex count, a cycle exists and Kahn returns
// (nil, false, nil).
//
// Returns ErrUndirectedGraph if g is not directed.
//
// Complexity: O(V + E).
func Kahn(g *core.Graph, opts ...Option) ([]int, bool, error) {
	if !g.Directed() {
		return nil, false, ErrUndirectedGraph
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	inDegree := make(map[int]int, g.VertexCount())
	var queue []int
	for _, id := range g.VertexIDs() {
		d := g.InDegreeOf(id)
		inDegree[id] = d
		if d == 0 {
			queue = append(queue, id)
		}
	}

	order := make([]int, 0, g.VertexCount())
	for len(queue) > 0 {
		select {
		case <-o.ctx.Done():
			return nil, false, nil
		default:
		}

		u := queue[0]
		queue = queue[1:]
		order = append(order, u)
		for _, e := range g.Adjacent(u) {
			inDegree[e.To]--
			if inDegree[e.To] == 0 {
				queue = append(queue, e.To)
			}
		}
	}

	if len(order) < g.VertexCount() {
		return nil, false, nil
	}
	return order, true, nil
}
