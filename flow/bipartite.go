package flow

import (
	"github.com/PL-play/kgraph/core"
	"github.com/PL-play/kgraph/paths"
)

// BipartiteMatchingViaFlow computes a maximum matching of undirected
// bipartite graph g by reduction to max-flow: it 2-colors g (panicking
// if g is directed or not bipartite, matching paths.IsBipartite's
// precondition), builds a directed unit-capacity graph with a
// super-source feeding every color-0 vertex and every color-1 vertex
// feeding a super-sink, and runs MaxFlow. The result maps each matched
// color-0 vertex to its color-1 partner.
//
// Complexity: O(V * E^2) via Edmonds-Karp.
func BipartiteMatchingViaFlow(g *core.Graph) (map[int]int, error) {
	side0, side1 := paths.Colors(g)

	superSource, superSink := freshIDPair(g)

	b := core.NewGraph(true, true)
	_ = b.AddVertexWithID(superSource, nil)
	_ = b.AddVertexWithID(superSink, nil)
	for _, id := range side0 {
		_ = b.AddVertexWithID(id, nil)
	}
	for _, id := range side1 {
		_ = b.AddVertexWithID(id, nil)
	}
	for _, id := range side0 {
		_ = b.AddEdge(superSource, id, 1)
		for _, e := range g.Adjacent(id) {
			_ = b.AddEdge(id, e.To, 1)
		}
	}
	for _, id := range side1 {
		_ = b.AddEdge(id, superSink, 1)
	}

	_, residual, err := MaxFlow(b, superSource, superSink)
	if err != nil {
		return nil, err
	}

	matching := make(map[int]int)
	side1Set := make(map[int]bool, len(side1))
	for _, id := range side1 {
		side1Set[id] = true
	}
	for _, u := range side0 {
		for _, e := range g.Adjacent(u) {
			if !side1Set[e.To] {
				continue
			}
			fwd, _ := residual.GetEdge(u, e.To)
			if fwd.Weight == 0 {
				matching[u] = e.To
				break
			}
		}
	}
	return matching, nil
}

// freshIDPair returns two vertex IDs not present in g, for use as a
// super-source/super-sink pair.
func freshIDPair(g *core.Graph) (a, b int) {
	max := -1
	for _, id := range g.VertexIDs() {
		if id > max {
			max = id
		}
	}
	return max + 1, max + 2
}

// HungarianMatching computes a maximum matching of undirected bipartite
// graph g directly via repeated BFS augmenting-path search (no flow
// graph construction): for each unmatched color-0 vertex, it BFS-explores
// alternating unmatched/matched edges; on reaching a free color-1
// vertex, it flips the matching along the discovered path (odd-indexed
// edges become matched, even-indexed become unmatched) and counts it.
// Panics under the same precondition as paths.IsBipartite.
//
// Complexity: O(V * E).
func HungarianMatching(g *core.Graph) (map[int]int, error) {
	side0, _ := paths.Colors(g)

	matchLeft := make(map[int]int)
	matchRight := make(map[int]int)

	for _, u := range side0 {
		if _, matched := matchLeft[u]; matched {
			continue
		}
		tryAugment(g, u, matchLeft, matchRight)
	}
	return matchLeft, nil
}

func tryAugment(g *core.Graph, start int, matchLeft, matchRight map[int]int) bool {
	parent := make(map[int]int)
	visitedLeft := map[int]bool{start: true}
	visitedRight := make(map[int]bool)

	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range g.Adjacent(cur) {
			w := e.To
			if visitedRight[w] {
				continue
			}
			visitedRight[w] = true
			parent[w] = cur

			next, matched := matchRight[w]
			if !matched {
				augmentPath(parent, matchLeft, matchRight, w)
				return true
			}
			if !visitedLeft[next] {
				visitedLeft[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}

func augmentPath(parent, matchLeft, matchRight map[int]int, w int) {
	for {
		l := parent[w]
		prevR, hadMatch := matchLeft[l]
		matchLeft[l] = w
		matchRight[w] = l
		if !hadMatch {
			return
		}
		w = prevR
	}
}
