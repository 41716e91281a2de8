package engine

// Canonical edge labels wired by Finalize.
const (
	RelHasTeam = "HAS_TEAM"
	RelHasUser = "HAS_USER"
	RelWorksOn = "WORKS_ON"
)

// OrgForm is the organization step of the wizard.
type OrgForm struct {
	Name    string `json:"name"`
	License string `json:"license,omitempty"`
	Country string `json:"country,omitempty"`
	Domain  string `json:"domain,omitempty"`
}

// TeamForm is the team step of the wizard.
type TeamForm struct {
	Name string `json:"name"`
	Dept string `json:"dept,omitempty"`
	KPIs string `json:"kpis,omitempty"`
}

// UserForm is the user step of the wizard.
type UserForm struct {
	Name            string `json:"name"`
	Email           string `json:"email,omitempty"`
	Title           string `json:"title,omitempty"`
	PersonalLicense string `json:"personal_license,omitempty"`
	Projects        string `json:"projects,omitempty"`
}

// ArtistForm is one roster entry collected by the wizard.
type ArtistForm struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Attrs Attrs  `json:"attrs"`
}

// Naming holds the per-entity naming convention overrides from the
// semantic-layer step. Empty fields mean "use the form value as is".
type Naming struct {
	Org     string `json:"org,omitempty"`
	Team    string `json:"team,omitempty"`
	User    string `json:"user,omitempty"`
	Artist  string `json:"artist,omitempty"`
	IP      string `json:"ip,omitempty"`
	Project string `json:"project,omitempty"`
}

// Finalize materializes form state into the graph: exactly one node per
// org, team and user, one node per artist, wired with the canonical
// HAS_TEAM / HAS_USER / WORKS_ON edges, swapped in atomically.
//
// Every call mints fresh node ids and discards the previous graph's
// identities wholesale; finalize replaces, it never merges. Calling it
// twice with the same forms yields structurally equivalent graphs that
// differ only in ids and timestamps.
func Finalize(g *Graph, org OrgForm, team TeamForm, user UserForm, artists []ArtistForm, naming Naming) error {
	orgNode := NewNode(NodeOrg, firstNonEmpty(naming.Org, org.Name, "Your Organization"), Attrs{
		Org: &OrgAttrs{License: org.License, Country: org.Country, Domain: org.Domain},
	})
	teamNode := NewNode(NodeTeam, firstNonEmpty(naming.Team, team.Name, "Team"), Attrs{
		Team: &TeamAttrs{Dept: team.Dept, KPIs: team.KPIs},
	})
	userNode := NewNode(NodeUser, firstNonEmpty(naming.User, user.Name, "User"), Attrs{
		User: &UserAttrs{Email: user.Email, Title: user.Title, PersonalLicense: user.PersonalLicense},
	})

	nodes := []*Node{orgNode, teamNode, userNode}
	edges := []Edge{
		{From: orgNode.ID, To: teamNode.ID, Rel: RelHasTeam},
		{From: teamNode.ID, To: userNode.ID, Rel: RelHasUser},
	}

	for _, a := range artists {
		name := a.Name
		if naming.Artist != "" {
			name = naming.Artist + ":" + a.Name
		}
		artistNode := NewNode(NodeArtist, name, a.Attrs)
		nodes = append(nodes, artistNode)
		edges = append(edges, Edge{From: teamNode.ID, To: artistNode.ID, Rel: RelWorksOn})
	}

	return g.Replace(nodes, edges)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
