package traverse

import (
	"context"

	"github.com/PL-play/kgraph/core"
)

// BFS runs a breadth-first search and returns vertices in level order:
// each vertex is appended to Order when it is first enqueued. By
// default it covers every component, in ascending start-vertex order;
// WithStart restricts it to the single component reachable from a given
// vertex, and WithParentMap additionally populates Result.Parent — since
// BFS explores level by level, walking Parent from any reached vertex
// back to the root retraces the minimum-hop path in an unweighted graph.
// Returns ErrStartNotFound if WithStart names an unknown vertex, or
// ctx.Err() if WithContext's context is cancelled mid-walk.
//
// Complexity: O(V + E).
func BFS(g *core.Graph, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.hasStart && !g.HasVertex(o.start) {
		return nil, ErrStartNotFound
	}

	visited := make(map[int]bool, g.VertexCount())
	result := &Result{Order: make([]int, 0, g.VertexCount())}
	if o.wantParent {
		result.Parent = make(map[int]int, g.VertexCount())
	}

	starts := g.VertexIDs()
	if o.hasStart {
		starts = []int{o.start}
	}
	for _, start := range starts {
		if visited[start] {
			continue
		}
		if result.Parent != nil {
			result.Parent[start] = start
		}
		if err := bfsFrom(o.ctx, g, start, visited, result); err != nil {
			return result, err
		}
	}
	return result, nil
}

func bfsFrom(ctx context.Context, g *core.Graph, start int, visited map[int]bool, result *Result) error {
	visited[start] = true
	result.Order = append(result.Order, start)
	queue := []int{start}
	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		id := queue[0]
		queue = queue[1:]
		for _, e := range g.Adjacent(id) {
			if !visited[e.To] {
				visited[e.To] = true
				if result.Parent != nil {
					result.Parent[e.To] = id
				}
				result.Order = append(result.Order, e.To)
				queue = append(queue, e.To)
			}
		}
	}
	return nil
}
