package core

import "sort"

// sortInts sorts ids ascending in place. Centralized here so every
// "deterministic order" comment in this package points at one
// implementation.
func sortInts(ids []int) {
	sort.Ints(ids)
}

// sortEdges sorts edges by (From, To) ascending in place.
func sortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
}
