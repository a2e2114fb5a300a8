package traverse

import (
	"context"
	"errors"

	"github.com/PL-play/kgraph/core"
)

// ErrStartNotFound is returned when WithStart names a vertex absent from
// the graph.
var ErrStartNotFound = errors.New("traverse: start vertex not found")

// Result holds the outcome of a DFS or BFS traversal: Order (the visit
// sequence — post-order for DFS, level order for BFS) and, only if
// WithParentMap was given, Parent (each visited vertex mapped to its
// predecessor in the traversal tree; a tree root maps to itself).
type Result struct {
	Order  []int
	Parent map[int]int
}

// DFS runs a recursive depth-first search and returns vertices in
// post-order: a vertex is appended to Order the moment recursion returns
// from it. By default it covers every component, in ascending
// start-vertex order; WithStart restricts it to the single component
// reachable from a given vertex, and WithParentMap additionally
// populates Result.Parent. Returns ErrStartNotFound if WithStart names an
// unknown vertex, or ctx.Err() if WithContext's context is cancelled
// mid-walk.
//
// Complexity: O(V + E).
func DFS(g *core.Graph, opts ...Option) (*Result, error) {
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
		if err := dfsPostOrder(o.ctx, g, start, visited, result); err != nil {
			return result, err
		}
	}
	return result, nil
}

func dfsPostOrder(ctx context.Context, g *core.Graph, id int, visited map[int]bool, result *Result) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	visited[id] = true
	for _, e := range g.Adjacent(id) {
		if !visited[e.To] {
			if result.Parent != nil {
				result.Parent[e.To] = id
			}
			if err := dfsPostOrder(ctx, g, e.To, visited, result); err != nil {
				return err
			}
		}
	}
	result.Order = append(result.Order, id)
	return nil
}

// DFSIterative runs depth-first search using an explicit stack and
// returns vertices in pre-order: a vertex is appended the moment it is
// popped, before its neighbors are pushed. Every vertex is visited
// exactly once, across every component, in ascending start-vertex order.
//
// Complexity: O(V + E).
func DFSIterative(g *core.Graph) []int {
	visited := make(map[int]bool, g.VertexCount())
	order := make([]int, 0, g.VertexCount())
	for _, start := range g.VertexIDs() {
		if visited[start] {
			continue
		}
		stack := []int{start}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[id] {
				continue
			}
			visited[id] = true
			order = append(order, id)

			nbrs := g.Adjacent(id)
			for i := len(nbrs) - 1; i >= 0; i-- {
				if !visited[nbrs[i].To] {
					stack = append(stack, nbrs[i].To)
				}
			}
		}
	}
	return order
}
