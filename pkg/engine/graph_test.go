package engine

import (
	"testing"
	"time"
)

func TestNewNode(t *testing.T) {
	n := NewNode(NodeOrg, "Atlantic Records", Attrs{Org: &OrgAttrs{Domain: "Label"}})

	if n.Type != NodeOrg {
		t.Fatalf("type = %q, want org", n.Type)
	}
	if n.Name != "Atlantic Records" {
		t.Fatalf("name = %q", n.Name)
	}
	if n.CreatedAt.IsZero() || n.UpdatedAt.Before(n.CreatedAt) {
		t.Fatalf("timestamps out of order: created %v updated %v", n.CreatedAt, n.UpdatedAt)
	}

	want := Ranking{Recency: 100, Frequency: 1, Completeness: 10, Trust: 50, Score: 36}
	if n.Ranking != want {
		t.Fatalf("ranking = %+v, want %+v", n.Ranking, want)
	}
}

func TestNewNodeEmptyNameFallsBack(t *testing.T) {
	n := NewNode(NodeTeam, "", Attrs{})
	if n.Name != "TEAM" {
		t.Fatalf("name = %q, want TEAM", n.Name)
	}
}

func TestNewNodeDistinctIDs(t *testing.T) {
	a := NewNode(NodeOrg, "Atlantic Records", Attrs{})
	time.Sleep(time.Millisecond)
	b := NewNode(NodeOrg, "Atlantic Records", Attrs{})

	if a.ID == b.ID {
		t.Fatalf("two createNode calls shared id %q", a.ID)
	}
	if a.Name != b.Name || a.Type != b.Type {
		t.Fatalf("name/type should match: %+v vs %+v", a, b)
	}
}

func TestTouch(t *testing.T) {
	override := func(v int) *int { return &v }

	tests := []struct {
		name     string
		start    Ranking
		override *RankingOverride
		want     Ranking
	}{
		{
			name:  "DefaultsRestoreRecencyAndBumpFrequency",
			start: Ranking{Recency: 10, Frequency: 50, Completeness: 40, Trust: 60},
			want:  Ranking{Recency: 100, Frequency: 53, Completeness: 40, Trust: 60, Score: 60},
		},
		{
			name:  "FrequencyCapsAt100",
			start: Ranking{Recency: 100, Frequency: 99, Completeness: 0, Trust: 0},
			want:  Ranking{Recency: 100, Frequency: 100, Completeness: 0, Trust: 0, Score: 40},
		},
		{
			name:     "OverrideWins",
			start:    Ranking{Recency: 10, Frequency: 10, Completeness: 10, Trust: 10},
			override: &RankingOverride{Recency: override(80), Trust: override(90)},
			want:     Ranking{Recency: 80, Frequency: 13, Completeness: 10, Trust: 90, Score: 45},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := NewNode(NodeArtist, "A", Attrs{})
			n.Ranking = tc.start
			before := n.UpdatedAt

			n.Touch(tc.override)

			if n.Ranking != tc.want {
				t.Fatalf("ranking = %+v, want %+v", n.Ranking, tc.want)
			}
			if n.UpdatedAt.Before(before) {
				t.Fatalf("updatedAt went backwards")
			}
			if n.Ranking.Score != Score(n.Ranking.Recency, n.Ranking.Frequency, n.Ranking.Completeness, n.Ranking.Trust) {
				t.Fatalf("score inconsistent after touch: %+v", n.Ranking)
			}
		})
	}
}

func TestReplaceRejectsDanglingEdges(t *testing.T) {
	a := NewNode(NodeOrg, "A", Attrs{})
	b := NewNode(NodeTeam, "B", Attrs{})

	tests := []struct {
		name    string
		nodes   []*Node
		edges   []Edge
		wantErr bool
	}{
		{"Valid", []*Node{a, b}, []Edge{{From: a.ID, To: b.ID, Rel: RelHasTeam}}, false},
		{"UnknownTo", []*Node{a}, []Edge{{From: a.ID, To: "nope", Rel: RelHasTeam}}, true},
		{"UnknownFrom", []*Node{b}, []Edge{{From: "nope", To: b.ID, Rel: RelHasTeam}}, true},
		{"DuplicateEdgesAllowed", []*Node{a, b}, []Edge{
			{From: a.ID, To: b.ID, Rel: RelHasTeam},
			{From: a.ID, To: b.ID, Rel: RelHasTeam},
		}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGraph()
			err := g.Replace(tc.nodes, tc.edges)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error, got graph %+v", g)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestReplaceDiscardsOldIdentities(t *testing.T) {
	g := NewGraph()
	old := NewNode(NodeOrg, "Old", Attrs{})
	if err := g.Replace([]*Node{old}, nil); err != nil {
		t.Fatal(err)
	}

	fresh := NewNode(NodeOrg, "Fresh", Attrs{})
	if err := g.Replace([]*Node{fresh}, nil); err != nil {
		t.Fatal(err)
	}

	if len(g.Nodes) != 1 {
		t.Fatalf("node count = %d, want 1", len(g.Nodes))
	}
	if _, ok := g.Nodes[old.ID]; ok {
		t.Fatalf("old node %q survived replace", old.ID)
	}
}

func TestRescoreAll(t *testing.T) {
	tests := []struct {
		name             string
		liveConnectors   int
		wantCompleteness int
		wantTrust        int
	}{
		{"NoLiveConnectors", 0, 10, 50},
		{"WithLiveConnectors", 3, 12, 51},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGraph()
			n := NewNode(NodeOrg, "A", Attrs{})
			if err := g.Replace([]*Node{n}, nil); err != nil {
				t.Fatal(err)
			}
			log := NewEvidenceLog()

			g.RescoreAll(tc.liveConnectors, log)

			got := g.Nodes[n.ID].Ranking
			if got.Completeness != tc.wantCompleteness {
				t.Fatalf("completeness = %d, want %d", got.Completeness, tc.wantCompleteness)
			}
			if got.Trust != tc.wantTrust {
				t.Fatalf("trust = %d, want %d", got.Trust, tc.wantTrust)
			}
			if got.Recency != 80 {
				t.Fatalf("recency = %d, want 80", got.Recency)
			}
			if got.Score != Score(got.Recency, got.Frequency, got.Completeness, got.Trust) {
				t.Fatalf("score inconsistent: %+v", got)
			}
			if log.Len() != 1 {
				t.Fatalf("evidence records = %d, want exactly 1", log.Len())
			}

			ev := log.All()[0]
			if ev.Source != SourceInternal {
				t.Fatalf("evidence source = %q, want internal", ev.Source)
			}
		})
	}
}

func TestRescoreAllNeverAddsOrRemoves(t *testing.T) {
	g := NewGraph()
	a := NewNode(NodeOrg, "A", Attrs{})
	b := NewNode(NodeTeam, "B", Attrs{})
	if err := g.Replace([]*Node{a, b}, []Edge{{From: a.ID, To: b.ID, Rel: RelHasTeam}}); err != nil {
		t.Fatal(err)
	}

	g.RescoreAll(1, NewEvidenceLog())

	if len(g.Nodes) != 2 || len(g.Edges) != 1 {
		t.Fatalf("topology changed: %d nodes %d edges", len(g.Nodes), len(g.Edges))
	}
}
