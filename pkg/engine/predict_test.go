package engine

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPredictTeamName(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		want   string
	}{
		{"Unset", "", "Digital Marketing"},
		{"Label", DomainLabel, "Label Digital"},
		{"Distributor", DomainDistributor, "Partner Marketing"},
		{"Management", DomainManagement, "Artist Management"},
		{"Publisher", DomainPublisher, "Growth"},
		{"Agency", DomainAgency, "Growth"},
		{"Other", DomainOther, "Growth"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PredictTeamName(tc.domain)
			if got != tc.want {
				t.Fatalf("PredictTeamName(%q) = %q, want %q", tc.domain, got, tc.want)
			}
		})
	}
}

func TestPredictConnectors(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		want   []string
	}{
		{
			name:   "Label",
			domain: DomainLabel,
			want:   []string{"apple_music", "crm_salesforce", "gsuite", "meta", "spotify", "tiktok", "youtube"},
		},
		{
			name:   "Distributor",
			domain: DomainDistributor,
			want:   []string{"apple_music", "crm_salesforce", "gsuite", "meta", "spotify", "tiktok", "youtube"},
		},
		{
			name:   "Management",
			domain: DomainManagement,
			want:   []string{"crm_salesforce", "gsuite", "instagram", "tiktok", "youtube"},
		},
		{
			name:   "UnsetGetsBaselineOnly",
			domain: "",
			want:   []string{"crm_salesforce", "gsuite"},
		},
		{
			name:   "PublisherGetsBaselineOnly",
			domain: DomainPublisher,
			want:   []string{"crm_salesforce", "gsuite"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PredictConnectors(tc.domain)

			seen := make(map[string]bool)
			for _, k := range got {
				if seen[k] {
					t.Fatalf("duplicate connector key %q in %v", k, got)
				}
				seen[k] = true
			}

			sort.Strings(got)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("PredictConnectors(%q) mismatch (-want +got):\n%s", tc.domain, diff)
			}
		})
	}
}

func TestPredictArtistRoster(t *testing.T) {
	tests := []struct {
		name      string
		orgName   string
		teamName  string
		wantNames []string
	}{
		{"AtlanticMatch", "Atlantic Records", "", []string{"Ed Sheeran", "Dua Lipa"}},
		{"WarnerViaTeam", "", "Warner Digital", []string{"Ed Sheeran", "Dua Lipa"}},
		{"CatalogMatch", "Rhino Entertainment", "", []string{"Fleetwood Mac", "Prince"}},
		{"BothTables", "Warner", "Catalog Marketing", []string{"Ed Sheeran", "Dua Lipa", "Fleetwood Mac", "Prince"}},
		{"CaseInsensitive", "ATLANTIC", "", []string{"Ed Sheeran", "Dua Lipa"}},
		{"Fallback", "Acme Corp", "Growth", []string{"Your Top Artist", "Emerging Priority"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seeds := PredictArtistRoster(tc.orgName, tc.teamName, nil)

			var names []string
			seen := make(map[string]bool)
			for _, s := range seeds {
				names = append(names, s.Name)
				if s.ID == "" || seen[s.ID] {
					t.Fatalf("seed %q has missing or duplicate id %q", s.Name, s.ID)
				}
				seen[s.ID] = true
				if s.Attrs.Artist == nil || s.Attrs.Artist.Priority != "TBD" {
					t.Fatalf("seed %q attrs = %+v, want priority TBD", s.Name, s.Attrs)
				}
			}

			if diff := cmp.Diff(tc.wantNames, names); diff != "" {
				t.Fatalf("roster mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPredictArtistRosterCustomStrategy(t *testing.T) {
	strategy := func(text string) []string {
		if text == "Indie Collective" {
			return []string{"Local Hero"}
		}
		return nil
	}

	seeds := PredictArtistRoster("Indie Collective", "", strategy)
	if len(seeds) != 1 || seeds[0].Name != "Local Hero" {
		t.Fatalf("custom strategy ignored: %+v", seeds)
	}
}

func TestPredictionsArePure(t *testing.T) {
	// Two identical calls must agree, signalling no hidden state beyond
	// the id sequence.
	a := PredictConnectors(DomainLabel)
	b := PredictConnectors(DomainLabel)
	sort.Strings(a)
	sort.Strings(b)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("PredictConnectors not deterministic:\n%s", diff)
	}

	if PredictTeamName(DomainLabel) != PredictTeamName(DomainLabel) {
		t.Fatal("PredictTeamName not deterministic")
	}
}
