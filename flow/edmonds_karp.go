package flow

import (
	"context"
	"math"

	"github.com/PL-play/kgraph/core"
)

// MaxFlow computes the maximum flow from source to sink in g using the
// Edmonds-Karp algorithm: repeatedly BFS the residual graph for the
// shortest (fewest-edge) augmenting path of positive capacity, then push
// the path's bottleneck capacity along it, subtracting from each forward
// edge and adding back to its reverse mirror. Terminates when no
// augmenting path remains.
//
// Returns the total flow value and the residual graph after
// termination: for each original edge (u→v), its realized flow equals
// the residual capacity of the reverse edge (v→u).
//
// WithContext installs a cancellation context checked before each vertex
// the augmenting-path BFS dequeues; a cancelled context simply halts the
// search early, the same way an exhausted residual graph does.
//
// Returns ErrSourceNotFound, ErrSinkNotFound, or ErrNegativeCapacity.
//
// Complexity: O(V * E^2).
func MaxFlow(g *core.Graph, source, sink int, opts ...Option) (maxFlow int, residual *core.Graph, err error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(source) {
		return 0, nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return 0, nil, ErrSinkNotFound
	}

	residual, err = buildResidual(g)
	if err != nil {
		return 0, nil, err
	}

	for {
		path, bottleneck := bfsAugmentingPath(o.ctx, residual, source, sink)
		if len(path) == 0 || bottleneck == 0 {
			break
		}
		maxFlow += bottleneck
		for i := 0; i < len(path)-1; i++ {
			u, v := path[i], path[i+1]
			fwd, _ := residual.GetEdge(u, v)
			_ = residual.SetWeight(u, v, fwd.Weight-bottleneck)
			rev, _ := residual.GetEdge(v, u)
			_ = residual.SetWeight(v, u, rev.Weight+bottleneck)
		}
	}
	return maxFlow, residual, nil
}

// bfsAugmentingPath finds the shortest path in residual from source to
// sink along edges of positive residual capacity, returning the path and
// its bottleneck capacity. Returns (nil, 0) if no path exists or ctx is
// cancelled.
func bfsAugmentingPath(ctx context.Context, residual *core.Graph, source, sink int) ([]int, int) {
	parent := map[int]int{source: source}
	bottleneck := map[int]int{source: math.MaxInt}

	queue := []int{source}
	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return nil, 0
		default:
		}

		u := queue[0]
		queue = queue[1:]
		for _, e := range residual.Adjacent(u) {
			if e.Weight <= 0 {
				continue
			}
			if _, seen := parent[e.To]; seen {
				continue
			}
			parent[e.To] = u
			if e.Weight < bottleneck[u] {
				bottleneck[e.To] = e.Weight
			} else {
				bottleneck[e.To] = bottleneck[u]
			}
			if e.To == sink {
				return reconstructPath(parent, source, sink), bottleneck[sink]
			}
			queue = append(queue, e.To)
		}
	}
	return nil, 0
}

func reconstructPath(parent map[int]int, source, sink int) []int {
	var path []int
	for cur := sink; ; {
		path = append([]int{cur}, path...)
		if cur == source {
			return path
		}
		cur = parent[cur]
	}
}
