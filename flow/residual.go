package flow

import (
	"errors"

	"github.com/PL-play/kgraph/core"
)

// ErrSourceNotFound is returned when the requested source vertex is
// absent from the graph.
var ErrSourceNotFound = errors.New("flow: source vertex not found")

// ErrSinkNotFound is returned when the requested sink vertex is absent
// from the graph.
var ErrSinkNotFound = errors.New("flow: sink vertex not found")

// ErrNegativeCapacity is returned when an edge carries a negative
// weight, which has no meaning as a flow capacity.
var ErrNegativeCapacity = errors.New("flow: negative edge capacity")

// buildResidual constructs a fresh directed weighted graph from g: for
// every edge (u→v,w), it adds (u→v,w) and, unless already present,
// (v→u,0). Mutating the result never touches g.
func buildResidual(g *core.Graph) (*core.Graph, error) {
	r := core.NewGraph(true, true)
	for _, id := range g.VertexIDs() {
		payload, _ := g.Payload(id)
		_ = r.AddVertexWithID(id, payload)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, ErrNegativeCapacity
		}
		if !r.IsConnected(e.From, e.To) {
			if err := r.AddEdge(e.From, e.To, e.Weight); err != nil {
				return nil, err
			}
		} else {
			cur, _ := r.GetEdge(e.From, e.To)
			_ = r.SetWeight(e.From, e.To, cur.Weight+e.Weight)
		}
		if !r.IsConnected(e.To, e.From) {
			_ = r.AddEdge(e.To, e.From, 0)
		}
	}
	return r, nil
}
