package paths

import (
	"github.com/PL-play/kgraph/core"
	"github.com/PL-play/kgraph/traverse"
)

// Order selects which traversal kernel SingleSourcePath uses to build its
// parent map.
type Order int

const (
	// BFS yields shortest-hop paths in unweighted graphs.
	BFS Order = iota
	// DFS yields a path, not necessarily the shortest one.
	DFS
)

// SingleSourcePath returns a parent map rooted at s: s maps to itself,
// and every other reachable vertex maps to its predecessor in the
// traversal tree chosen by ord. Returns (nil, false) if s is not a vertex
// of g.
//
// Complexity: O(V + E).
func SingleSourcePath(g *core.Graph, s int, ord Order) (map[int]int, bool) {
	var (
		result *traverse.Result
		err    error
	)
	if ord == BFS {
		result, err = traverse.BFS(g, traverse.WithStart(s), traverse.WithParentMap())
	} else {
		result, err = traverse.DFS(g, traverse.WithStart(s), traverse.WithParentMap())
	}
	if err != nil {
		return nil, false
	}
	return result.Parent, true
}

// PathTo reconstructs the vertex sequence from the root of parent (the
// vertex mapping to itself) to t, inclusive, by walking parent backward
// from t. Returns (nil, false) if t is not present in parent, i.e. not
// reachable from the root SingleSourcePath was called with.
//
// Complexity: O(path length).
func PathTo(parent map[int]int, t int) ([]int, bool) {
	if _, ok := parent[t]; !ok {
		return nil, false
	}
	var rev []int
	for cur := t; ; {
		rev = append(rev, cur)
		next := parent[cur]
		if next == cur {
			break
		}
		cur = next
	}
	out := make([]int, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}
	return out, true
}
