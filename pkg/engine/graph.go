// Package engine implements the context graph behind the onboarding
// wizard: a session-scoped entity graph with provenance-driven ranking
// and predictive autofill.
//
// The engine never talks to the network and never persists anything.
// It receives form values and connector state from its callers, and
// emits a scored graph of nodes and edges plus an append-only evidence
// log explaining every automated suggestion.
package engine

import (
	"fmt"
	"strings"
	"time"
)

// NodeType classifies a node in the context graph.
type NodeType string

const (
	NodeOrg    NodeType = "org"
	NodeTeam   NodeType = "team"
	NodeUser   NodeType = "user"
	NodeArtist NodeType = "artist"
	NodeIP     NodeType = "ip"
)

// Attrs carries the typed attributes of a node. Exactly one of the
// per-type variants is set, matching the node's Type; Extra holds any
// free-form data that does not fit the typed fields.
type Attrs struct {
	Org    *OrgAttrs         `json:"org,omitempty"`
	Team   *TeamAttrs        `json:"team,omitempty"`
	User   *UserAttrs        `json:"user,omitempty"`
	Artist *ArtistAttrs      `json:"artist,omitempty"`
	IP     *IPAttrs          `json:"ip,omitempty"`
	Extra  map[string]string `json:"extra,omitempty"`
}

// OrgAttrs describes an organization node.
type OrgAttrs struct {
	License string `json:"license,omitempty"`
	Country string `json:"country,omitempty"`
	Domain  string `json:"domain,omitempty"`
}

// TeamAttrs describes a team node.
type TeamAttrs struct {
	Dept string `json:"dept,omitempty"`
	KPIs string `json:"kpis,omitempty"`
}

// UserAttrs describes a user node.
type UserAttrs struct {
	Email           string `json:"email,omitempty"`
	Title           string `json:"title,omitempty"`
	PersonalLicense string `json:"personal_license,omitempty"`
}

// ArtistAttrs describes an artist node.
type ArtistAttrs struct {
	Priority string `json:"priority,omitempty"`
}

// IPAttrs describes an intellectual-property node (a track, an album).
type IPAttrs struct {
	Title string `json:"title,omitempty"`
	ISRC  string `json:"isrc,omitempty"`
}

// Node is one entity in the context graph. ID and Type are immutable
// after creation; Name and Attrs may change. UpdatedAt never precedes
// CreatedAt.
type Node struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      NodeType  `json:"type"`
	Attrs     Attrs     `json:"attrs"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Ranking   Ranking   `json:"ranking"`
}

// Edge is a directed, labeled relation between two nodes. The label
// vocabulary is defined by callers, not by the engine, and duplicate
// edges are permitted.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
	Rel  string `json:"rel"`
}

// Graph owns a set of nodes and the edges between them. Nothing outside
// the graph holds references into it.
type Graph struct {
	Nodes map[string]*Node `json:"nodes"`
	Edges []Edge           `json:"edges"`
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		Nodes: make(map[string]*Node),
		Edges: []Edge{},
	}
}

// NewNode constructs a node with a fresh id and the initial ranking
// seed. The score is derived immediately so the node never exists in an
// inconsistent state.
func NewNode(t NodeType, name string, attrs Attrs) *Node {
	display := name
	if display == "" {
		display = strings.ToUpper(string(t))
	}

	now := time.Now()
	n := &Node{
		ID:        MakeID(string(t), name),
		Name:      display,
		Type:      t,
		Attrs:     attrs,
		CreatedAt: now,
		UpdatedAt: now,
		Ranking: Ranking{
			Recency:      100,
			Frequency:    1,
			Completeness: 10,
			Trust:        50,
		},
	}
	n.Ranking.rescore()
	return n
}

// RankingOverride carries explicit signal values applied on top of the
// default touch behavior. Nil fields are left untouched.
type RankingOverride struct {
	Recency      *int
	Frequency    *int
	Completeness *int
	Trust        *int
}

// Touch records activity on a node: the recency signal snaps back to
// 100, frequency grows by 3 (capped at 100), the update timestamp moves
// forward and the score is recomputed. Explicit overrides win over the
// defaults.
func (n *Node) Touch(o *RankingOverride) {
	n.UpdatedAt = time.Now()
	n.Ranking.Recency = 100
	n.Ranking.Frequency = clamp(n.Ranking.Frequency + 3)
	if o != nil {
		if o.Recency != nil {
			n.Ranking.Recency = *o.Recency
		}
		if o.Frequency != nil {
			n.Ranking.Frequency = *o.Frequency
		}
		if o.Completeness != nil {
			n.Ranking.Completeness = *o.Completeness
		}
		if o.Trust != nil {
			n.Ranking.Trust = *o.Trust
		}
	}
	n.Ranking.rescore()
}

// Replace swaps the entire graph contents in one step. Old node
// identities are discarded, not merged. An edge referencing a node
// outside the new node set is rejected, leaving the graph unchanged.
func (g *Graph) Replace(nodes []*Node, edges []Edge) error {
	byID := make(map[string]*Node, len(nodes))
	for _, n := range nodes {
		if _, dup := byID[n.ID]; dup {
			return fmt.Errorf("duplicate node id %q", n.ID)
		}
		byID[n.ID] = n
	}
	for _, e := range edges {
		if _, ok := byID[e.From]; !ok {
			return fmt.Errorf("edge %s references unknown node %q", e.Rel, e.From)
		}
		if _, ok := byID[e.To]; !ok {
			return fmt.Errorf("edge %s references unknown node %q", e.Rel, e.To)
		}
	}

	g.Nodes = byID
	g.Edges = append([]Edge{}, edges...)
	return nil
}

// RescoreAll advances every node's ranking as if an enrichment pass ran
// against the currently live connectors: completeness +2 and trust +1
// when at least one connector is live (a no-op on both otherwise),
// recency pinned to 80, scores recomputed. Exactly one evidence record
// summarizing the pass is appended per call.
//
// The pass mutates ranking fields only; it never adds or removes nodes
// or edges.
func (g *Graph) RescoreAll(liveConnectors int, log *EvidenceLog) {
	recency := 80
	for _, n := range g.Nodes {
		completeness := n.Ranking.Completeness
		trust := n.Ranking.Trust
		if liveConnectors > 0 {
			completeness = clamp(completeness + 2)
			trust = clamp(trust + 1)
		}
		n.Touch(&RankingOverride{
			Recency:      &recency,
			Completeness: &completeness,
			Trust:        &trust,
		})
	}

	log.Record(
		SourceInternal,
		fmt.Sprintf("connector.health=%d", liveConnectors),
		0.9,
		"rank.update:trust+completeness",
		[]string{"graph.nodes.*.ranking"},
	)
}
