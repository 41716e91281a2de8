package engine

import (
	"regexp"
	"strings"
)

// Predictive heuristics: pure functions that observe partial form state
// and propose defaults. They never mutate anything; the caller decides
// whether to apply a suggestion and records the matching evidence.

// Business domains recognized by the heuristics.
const (
	DomainLabel       = "Label"
	DomainManagement  = "Management"
	DomainDistributor = "Distributor"
	DomainPublisher   = "Publisher"
	DomainAgency      = "Agency"
	DomainOther       = "Other"
)

// PredictTeamName proposes a team name from the organization's business
// domain. An unset domain falls back to a generic marketing team.
func PredictTeamName(domain string) string {
	switch domain {
	case "":
		return "Digital Marketing"
	case DomainLabel:
		return "Label Digital"
	case DomainDistributor:
		return "Partner Marketing"
	case DomainManagement:
		return "Artist Management"
	default:
		return "Growth"
	}
}

// PredictConnectors proposes the connector keys to preselect for a
// domain: a domain-conditional base set unioned with the universal
// office-suite and CRM baseline. The result contains no duplicates and
// its order is not significant.
func PredictConnectors(domain string) []string {
	var keys []string
	switch domain {
	case DomainLabel, DomainDistributor:
		keys = append(keys, "spotify", "apple_music", "youtube", "tiktok", "meta")
	case DomainManagement:
		keys = append(keys, "tiktok", "instagram", "youtube")
	}
	keys = append(keys, "gsuite", "crm_salesforce")

	seen := make(map[string]bool, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// ArtistSeed is one proposed roster entry. Each seed carries a fresh id
// so the caller can adopt it directly.
type ArtistSeed struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Attrs Attrs  `json:"attrs"`
}

// RosterStrategy maps free organization/team text to known artist
// names. It is a parameter so the pattern table can be swapped for a
// real data-source lookup without touching the graph machinery.
type RosterStrategy func(text string) []string

var (
	reMajorLabel = regexp.MustCompile(`(?i)atlantic|warner|atl`)
	reCatalog    = regexp.MustCompile(`(?i)rhino|catalog`)
)

// DefaultRosterStrategy pattern-matches the text against a small table
// of known label name fragments.
func DefaultRosterStrategy(text string) []string {
	var names []string
	if reMajorLabel.MatchString(text) {
		names = append(names, "Ed Sheeran", "Dua Lipa")
	}
	if reCatalog.MatchString(text) {
		names = append(names, "Fleetwood Mac", "Prince")
	}
	return names
}

// PredictArtistRoster proposes roster seeds from the organization and
// team names, falling back to two generic placeholder entries when the
// strategy recognizes nothing. A nil strategy uses the default pattern
// table.
func PredictArtistRoster(orgName, teamName string, strategy RosterStrategy) []ArtistSeed {
	if strategy == nil {
		strategy = DefaultRosterStrategy
	}

	names := strategy(strings.TrimSpace(orgName + teamName))
	if len(names) == 0 {
		names = []string{"Your Top Artist", "Emerging Priority"}
	}

	seeds := make([]ArtistSeed, 0, len(names))
	for _, name := range names {
		seeds = append(seeds, ArtistSeed{
			ID:    MakeID(string(NodeArtist), name),
			Name:  name,
			Attrs: Attrs{Artist: &ArtistAttrs{Priority: "TBD"}},
		})
	}
	return seeds
}
