package connectivity

import (
	"errors"
	"sort"

	"github.com/PL-play/kgraph/core"
)

// ErrDirectedGraph is returned by Bridges and CutPoints when given a
// directed graph: the original C source this module is grounded on leaves
// directed bridges/cut points unimplemented (an assertion failure in the
// source), and spec.md documents that gap as accepted rather than
// resolved. connectivity.SCC is the directed analogue to reach for
// instead.
var ErrDirectedGraph = errors.New("connectivity: bridges/cut points are undirected-only")

// tarjan carries the shared low-link DFS state for Bridges and CutPoints.
type tarjan struct {
	g        *core.Graph
	ord      map[int]int
	low      map[int]int
	visited  map[int]bool
	timer    int
	bridges  []core.Edge
	cutSet   map[int]bool
	rootKids int
	root     int
}

// Bridges returns every bridge of undirected graph g: an edge whose
// removal increases the number of connected components. It implements
// the Tarjan-style low-link DFS from spec.md §4.3: after recursing from v
// into child w, low[v] = min(low[v], low[w]); if low[w] > ord[v], (v,w)
// is a bridge. Returns ErrDirectedGraph if g is directed.
//
// Complexity: O(V + E).
func Bridges(g *core.Graph) ([]core.Edge, error) {
	if g.Directed() {
		return nil, ErrDirectedGraph
	}
	t := &tarjan{
		g:       g,
		ord:     make(map[int]int, g.VertexCount()),
		low:     make(map[int]int, g.VertexCount()),
		visited: make(map[int]bool, g.VertexCount()),
	}
	for _, start := range g.VertexIDs() {
		if !t.visited[start] {
			t.dfsBridges(start, -1)
		}
	}
	sort.Slice(t.bridges, func(i, j int) bool {
		if t.bridges[i].From != t.bridges[j].From {
			return t.bridges[i].From < t.bridges[j].From
		}
		return t.bridges[i].To < t.bridges[j].To
	})
	return t.bridges, nil
}

func (t *tarjan) dfsBridges(v, parent int) {
	t.visited[v] = true
	t.ord[v] = t.timer
	t.low[v] = t.timer
	t.timer++

	skippedParent := false
	for _, e := range t.g.Adjacent(v) {
		w := e.To
		if w == parent && !skippedParent {
			// Skip exactly one edge back to the immediate parent, so a
			// genuine parallel structure (not possible in a simple graph,
			// but kept for clarity) wouldn't be silently ignored twice.
			skippedParent = true
			continue
		}
		if !t.visited[w] {
			t.dfsBridges(w, v)
			if t.low[w] < t.low[v] {
				t.low[v] = t.low[w]
			}
			if t.low[w] > t.ord[v] {
				t.bridges = append(t.bridges, e)
			}
		} else if t.ord[w] < t.low[v] {
			t.low[v] = t.ord[w]
		}
	}
}

// CutPoints returns every articulation point of undirected graph g: a
// vertex whose removal increases the number of connected components. The
// root of each DFS tree is a cut point iff it has more than one DFS-tree
// child; any other vertex v is a cut point iff some DFS child w satisfies
// low[w] >= ord[v]. Returns ErrDirectedGraph if g is directed.
//
// Complexity: O(V + E).
func CutPoints(g *core.Graph) ([]int, error) {
	if g.Directed() {
		return nil, ErrDirectedGraph
	}
	t := &tarjan{
		g:       g,
		ord:     make(map[int]int, g.VertexCount()),
		low:     make(map[int]int, g.VertexCount()),
		visited: make(map[int]bool, g.VertexCount()),
		cutSet:  make(map[int]bool),
	}
	for _, start := range g.VertexIDs() {
		if !t.visited[start] {
			t.root = start
			t.rootKids = 0
			t.dfsCutPoints(start, -1)
			if t.rootKids > 1 {
				t.cutSet[start] = true
			}
		}
	}
	out := make([]int, 0, len(t.cutSet))
	for v := range t.cutSet {
		out = append(out, v)
	}
	sort.Ints(out)
	return out, nil
}

func (t *tarjan) dfsCutPoints(v, parent int) {
	t.visited[v] = true
	t.ord[v] = t.timer
	t.low[v] = t.timer
	t.timer++

	skippedParent := false
	for _, e := range t.g.Adjacent(v) {
		w := e.To
		if w == parent && !skippedParent {
			skippedParent = true
			continue
		}
		if !t.visited[w] {
			if v == t.root {
				t.rootKids++
			}
			t.dfsCutPoints(w, v)
			if t.low[w] < t.low[v] {
				t.low[v] = t.low[w]
			}
			if v != t.root && t.low[w] >= t.ord[v] {
				t.cutSet[v] = true
			}
		} else if t.ord[w] < t.low[v] {
			t.low[v] = t.ord[w]
		}
	}
}
