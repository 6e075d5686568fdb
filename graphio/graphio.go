package graphio

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/opencircuit/lvscheck/circuitgraph"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// document is the wire shape spec §6 defines for graph output.
type document struct {
	Nodes []nodeRecord `json:"nodes"`
	Edges []edgeRecord `json:"edges"`
}

type nodeRecord struct {
	ID    int                    `json:"id"`
	Name  string                 `json:"name"`
	Label circuitgraph.NodeLabel `json:"label"`
}

type edgeRecord struct {
	Source int                    `json:"source"`
	Target int                    `json:"target"`
	Label  circuitgraph.EdgeLabel `json:"label"`
}

// Export writes g to w in the spec §6 JSON graph shape: nodes and edges
// in the graph's insertion order, stable ids.
func Export(w io.Writer, g *circuitgraph.Graph) error {
	doc := document{}
	for _, n := range g.Nodes() {
		doc.Nodes = append(doc.Nodes, nodeRecord{ID: n.ID, Name: n.Name, Label: n.Label})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, edgeRecord{Source: e.Source, Target: e.Target, Label: e.Label})
	}

	return jsonAPI.NewEncoder(w).Encode(doc)
}

// Import reads a spec §6 JSON graph document from r and rebuilds it as a
// circuitgraph.Graph, preserving the ids the document carries.
func Import(r io.Reader) (*circuitgraph.Graph, error) {
	var doc document
	if err := jsonAPI.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}

	g := circuitgraph.New()
	for _, n := range doc.Nodes {
		if err := g.AddNode(n.ID, n.Name, n.Label); err != nil {
			return nil, err
		}
	}
	for _, e := range doc.Edges {
		if _, err := g.AddEdge(e.Source, e.Target, e.Label); err != nil {
			return nil, err
		}
	}

	return g, nil
}
