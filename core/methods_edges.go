package core

// AddEdge inserts the edge (from→to) with the given weight, mirroring it
// as (to→from) when the graph is undirected. It rejects self-loops and
// missing endpoints without mutating the graph. Adding a duplicate (u→v)
// is idempotent: the weight is left untouched and no counter changes,
// matching §8's "add-edge is idempotent on duplicates" property. Use
// SetWeight to change an existing edge's weight.
//
// Unweighted graphs accept any weight but store it as 0, per §3's "the
// weighted flag governs only the meaning of the weight field".
//
// Complexity: O(1).
func (g *Graph) AddEdge(from, to, weight int) error {
	if from == to {
		return ErrSelfLoop
	}
	if _, ok := g.vertices[from]; !ok {
		return ErrFromMissing
	}
	if _, ok := g.vertices[to]; !ok {
		return ErrToMissing
	}
	if !g.weighted {
		weight = 0
	}

	if _, exists := g.adj[from][to]; exists {
		return nil // idempotent: duplicate edge, no counter change
	}

	g.putEdgeRecord(from, to, weight)
	if g.directed {
		g.outDegree[from]++
		g.inDegree[to]++
		g.edgeCount++
	} else {
		g.putEdgeRecord(to, from, weight)
		g.edgeCount++
	}
	return nil
}

// putEdgeRecord installs a single directed (from→to) record in both the
// edges catalog and the adjacency map. It does not touch degree counters
// or edgeCount; callers own that bookkeeping so that undirected mirrors
// and directed single records can share this primitive.
func (g *Graph) putEdgeRecord(from, to, weight int) {
	e := &Edge{From: from, To: to, Weight: weight}
	g.edges[edgeKey{from, to}] = e
	g.adj[from][to] = e
}

// removeLogicalEdge deletes the record (u→v), and its mirror (v→u) if the
// graph is undirected, updating degree counters and edgeCount. It reports
// whether an edge was actually present.
func (g *Graph) removeLogicalEdge(u, v int) bool {
	if _, ok := g.adj[u][v]; !ok {
		return false
	}
	delete(g.adj[u], v)
	delete(g.edges, edgeKey{u, v})
	if g.directed {
		g.outDegree[u]--
		g.inDegree[v]--
	} else {
		delete(g.adj[v], u)
		delete(g.edges, edgeKey{v, u})
	}
	g.edgeCount--
	return true
}

// RemoveEdge deletes the edge (from→to), and its mirror when undirected,
// returning the number of logical edges removed (0 or 1).
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to int) int {
	if g.removeLogicalEdge(from, to) {
		return 1
	}
	return 0
}

// SetWeight reassigns the weight of an existing edge (from→to), updating
// both mirrors when the graph is undirected. It requires a weighted graph
// and an existing edge.
//
// Complexity: O(1).
func (g *Graph) SetWeight(from, to, weight int) error {
	if !g.weighted {
		return ErrUnweighted
	}
	e, ok := g.adj[from][to]
	if !ok {
		return ErrEdgeNotFound
	}
	e.Weight = weight
	if !g.directed {
		g.adj[to][from].Weight = weight
	}
	return nil
}

// GetEdge returns a copy of the edge record (from→to), if present.
//
// Complexity: O(1).
func (g *Graph) GetEdge(from, to int) (Edge, bool) {
	e, ok := g.adj[from][to]
	if !ok {
		return Edge{}, false
	}
	return *e, true
}

// IsConnected reports whether an edge record (u→v) exists. For undirected
// graphs this is symmetric; for directed graphs it is not.
//
// Complexity: O(1).
func (g *Graph) IsConnected(u, v int) bool {
	_, ok := g.adj[u][v]
	return ok
}

// Adjacent returns a copy of every outgoing edge of id, in ascending order
// of the neighbor id. The returned slice is freshly allocated on every
// call; mutating it does not affect the graph.
//
// Complexity: O(deg(id) log deg(id)).
func (g *Graph) Adjacent(id int) []Edge {
	nbrs := g.adj[id]
	out := make([]Edge, 0, len(nbrs))
	ids := make([]int, 0, len(nbrs))
	for to := range nbrs {
		ids = append(ids, to)
	}
	sortInts(ids)
	for _, to := range ids {
		out = append(out, *nbrs[to])
	}
	return out
}

// DegreeOf returns the degree of id in an undirected graph: the number of
// distinct neighbors reachable by one edge. Calling it on a directed graph
// is a precondition violation and panics; use InDegreeOf/OutDegreeOf
// instead.
//
// Complexity: O(1).
func (g *Graph) DegreeOf(id int) int {
	if g.directed {
		panic("core: DegreeOf is only defined for undirected graphs")
	}
	return len(g.adj[id])
}

// OutDegreeOf returns the out-degree of id in a directed graph. Calling it
// on an undirected graph is a precondition violation and panics.
//
// Complexity: O(1).
func (g *Graph) OutDegreeOf(id int) int {
	if !g.directed {
		panic("core: OutDegreeOf is only defined for directed graphs")
	}
	return g.outDegree[id]
}

// InDegreeOf returns the in-degree of id in a directed graph. Calling it
// on an undirected graph is a precondition violation and panics.
//
// Complexity: O(1).
func (g *Graph) InDegreeOf(id int) int {
	if !g.directed {
		panic("core: InDegreeOf is only defined for directed graphs")
	}
	return g.inDegree[id]
}

// Edges returns a copy of every edge record in the graph, in ascending
// (From, To) order. For undirected graphs both mirror records are
// included; callers that want one record per logical edge should dedup on
// From < To themselves (mst.Kruskal does exactly this).
//
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sortEdges(out)
	return out
}

// Reverse returns a graph with every edge direction flipped. For
// undirected graphs it returns the receiver itself (reversal is the
// identity for undirected graphs). For directed graphs it returns a fresh
// *Graph with the same vertices and, for each (u→v, w), a (v→u, w) record.
//
// Complexity: O(1) for undirected; O(V + E) for directed.
func (g *Graph) Reverse() *Graph {
	if !g.directed {
		return g
	}
	r := NewGraph(true, g.weighted)
	for _, id := range g.VertexIDs() {
		payload, _ := g.Payload(id)
		_ = r.AddVertexWithID(id, payload)
	}
	for _, e := range g.Edges() {
		_ = r.AddEdge(e.To, e.From, e.Weight)
	}
	return r
}

// CloneEdges returns a fresh *Graph with the same vertices, flavor, and
// edge set as g, but independent storage: mutating the clone's edges
// (e.g. Hierholzer consuming edges as it walks) never touches g. Used by
// walks.EulerCircuit, which must destroy edges while it works.
//
// Complexity: O(V + E).
func (g *Graph) CloneEdges() *Graph {
	c := NewGraph(g.directed, g.weighted)
	for _, id := range g.VertexIDs() {
		payload, _ := g.Payload(id)
		_ = c.AddVertexWithID(id, payload)
	}
	for _, e := range g.Edges() {
		_ = c.AddEdge(e.From, e.To, e.Weight)
	}
	return c
}
