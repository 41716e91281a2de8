package engine

import (
	"encoding/json"
	"fmt"
)

// Document is the portable export format: the full graph plus the
// evidence log, self-describing enough to reconstruct both.
type Document struct {
	Version  int        `json:"version"`
	Graph    *Graph     `json:"graph"`
	Evidence []Evidence `json:"evidence"`
}

// DocumentVersion is the current export format version.
const DocumentVersion = 1

// Export materializes the graph and evidence log into a document. The
// document holds deep copies; later engine mutations do not leak into
// an already exported document.
func Export(g *Graph, log *EvidenceLog) Document {
	return Document{
		Version:  DocumentVersion,
		Graph:    g.clone(),
		Evidence: log.All(),
	}
}

// Marshal serializes the document as indented JSON, the shape offered
// to the user as a downloadable seed file.
func (d Document) Marshal() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Import reconstructs a graph and evidence log from a serialized
// document. It is the inverse of Export followed by Marshal: node ids,
// attrs, rankings, timestamps and evidence records all round-trip.
func Import(data []byte) (*Graph, *EvidenceLog, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("decode export document: %w", err)
	}
	if doc.Version != DocumentVersion {
		return nil, nil, fmt.Errorf("unsupported export document version %d", doc.Version)
	}

	g := NewGraph()
	if doc.Graph != nil {
		nodes := make([]*Node, 0, len(doc.Graph.Nodes))
		for _, n := range doc.Graph.Nodes {
			nodes = append(nodes, n)
		}
		if err := g.Replace(nodes, doc.Graph.Edges); err != nil {
			return nil, nil, err
		}
	}

	log := &EvidenceLog{records: append([]Evidence{}, doc.Evidence...)}
	return g, log, nil
}

func (g *Graph) clone() *Graph {
	out := NewGraph()
	for id, n := range g.Nodes {
		copied := *n
		copied.Attrs = n.Attrs.clone()
		out.Nodes[id] = &copied
	}
	out.Edges = append(out.Edges, g.Edges...)
	return out
}

func (a Attrs) clone() Attrs {
	out := a
	if a.Org != nil {
		v := *a.Org
		out.Org = &v
	}
	if a.Team != nil {
		v := *a.Team
		out.Team = &v
	}
	if a.User != nil {
		v := *a.User
		out.User = &v
	}
	if a.Artist != nil {
		v := *a.Artist
		out.Artist = &v
	}
	if a.IP != nil {
		v := *a.IP
		out.IP = &v
	}
	if a.Extra != nil {
		out.Extra = make(map[string]string, len(a.Extra))
		for k, v := range a.Extra {
			out.Extra[k] = v
		}
	}
	return out
}
