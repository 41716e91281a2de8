package engine

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var timeComparer = cmp.Comparer(func(a, b time.Time) bool { return a.Equal(b) })

func TestExportImportRoundTrip(t *testing.T) {
	org, team, user, artists := testForms()
	g := NewGraph()
	if err := Finalize(g, org, team, user, artists, Naming{}); err != nil {
		t.Fatal(err)
	}

	log := NewEvidenceLog()
	log.Record(SourceOAuth, "google.verified_email", 0.98, "prefill:user.email", []string{"user.email"})
	log.Record(SourceHeuristic, "predictTeamName(Label)", 0.6, "autofill:team.name", []string{"team.name"})
	g.RescoreAll(2, log)

	data, err := Export(g, log).Marshal()
	if err != nil {
		t.Fatal(err)
	}

	g2, log2, err := Import(data)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(g, g2, timeComparer); diff != "" {
		t.Fatalf("graph did not round-trip (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(log.All(), log2.All(), timeComparer); diff != "" {
		t.Fatalf("evidence did not round-trip (-want +got):\n%s", diff)
	}
}

func TestExportIsACopy(t *testing.T) {
	g := NewGraph()
	n := NewNode(NodeOrg, "Acme", Attrs{Org: &OrgAttrs{Domain: "Label"}})
	if err := g.Replace([]*Node{n}, nil); err != nil {
		t.Fatal(err)
	}
	log := NewEvidenceLog()

	doc := Export(g, log)
	scoreBefore := doc.Graph.Nodes[n.ID].Ranking.Score

	// Mutating the live graph after export must not change the document.
	g.RescoreAll(5, log)

	if doc.Graph.Nodes[n.ID].Ranking.Score != scoreBefore {
		t.Fatal("export document shares node state with the live graph")
	}
	if len(doc.Evidence) != 0 {
		t.Fatal("export document picked up evidence recorded after export")
	}
}

func TestImportRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"Garbage", "not json"},
		{"WrongVersion", `{"version": 99, "graph": {"nodes": {}, "edges": []}, "evidence": []}`},
		{"DanglingEdge", `{"version": 1, "graph": {"nodes": {}, "edges": [{"from": "a", "to": "b", "rel": "HAS_TEAM"}]}, "evidence": []}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := Import([]byte(tc.data)); err == nil {
				t.Fatalf("Import accepted %q", tc.data)
			}
		})
	}
}

func TestExportDocumentShape(t *testing.T) {
	g := NewGraph()
	log := NewEvidenceLog()
	data, err := Export(g, log).Marshal()
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"version", "graph", "evidence"} {
		if _, ok := raw[key]; !ok {
			t.Fatalf("export document missing %q: %s", key, data)
		}
	}
}
