// Package session owns the per-session onboarding state: the wizard
// forms, connector toggles, glossary, context graph and evidence log.
//
// Every session is guarded by its own mutex; all mutations go through
// session methods, which keeps the single-writer discipline the engine
// expects even when HTTP handlers and the enrichment ticker race.
package session

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/wavo-hq/onboarding/backend/pkg/copilot"
	"github.com/wavo-hq/onboarding/backend/pkg/engine"
	"github.com/wavo-hq/onboarding/backend/pkg/engine/catalog"
)

// Step identifies one screen of the wizard.
type Step string

const (
	StepOrg        Step = "org"
	StepTeam       Step = "team"
	StepUser       Step = "user"
	StepConnectors Step = "connectors"
	StepSemantic   Step = "semantic"
	StepArtists    Step = "artists"
	StepReview     Step = "review"
)

var stepOrder = []Step{StepOrg, StepTeam, StepUser, StepConnectors, StepSemantic, StepArtists, StepReview}

func stepIndex(s Step) int {
	for i, step := range stepOrder {
		if step == s {
			return i
		}
	}
	return -1
}

// Session is the state of one onboarding run. All exported methods are
// safe for concurrent use.
type Session struct {
	mu sync.Mutex

	id        string
	createdAt time.Time
	step      Step

	org        engine.OrgForm
	team       engine.TeamForm
	user       engine.UserForm
	connectors map[string]bool
	deferred   bool
	naming     engine.Naming
	artists    []engine.ArtistForm
	glossary   []catalog.GlossaryItem

	graph    *engine.Graph
	evidence *engine.EvidenceLog
	memory   *Snapshot

	catalog catalog.Catalog
	roster  engine.RosterStrategy

	// One-shot autofill guards, mirroring the wizard's behavior of
	// suggesting each default at most once.
	teamAutofilled      bool
	connectorsPreselect bool
	rosterSeeded        bool
}

func newSession(id string, cat catalog.Catalog, roster engine.RosterStrategy) *Session {
	s := &Session{
		id:         id,
		createdAt:  time.Now(),
		step:       StepOrg,
		connectors: make(map[string]bool),
		glossary:   catalog.DefaultGlossary(),
		graph:      engine.NewGraph(),
		evidence:   engine.NewEvidenceLog(),
		catalog:    cat,
		roster:     roster,
		deferred:   true,
	}

	// Simulated prior knowledge: the signals the product would have
	// gathered before the wizard opens.
	s.evidence.Record(engine.SourceOAuth, "google.verified_email", 0.98, "prefill:user.email", []string{"user.email"})
	s.evidence.Record(engine.SourceWeb, "linkedin.title=Director, Digital Marketing", 0.74, "suggest:user.title", []string{"user.title"})
	s.evidence.Record(engine.SourceInternal, "wavo.customer_domain=warner.com", 0.85, "suggest:org.domain=Label", []string{"org.domain"})

	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// OrgPatch, TeamPatch, UserPatch and NamingPatch carry partial form
// updates; nil fields are left unchanged.
type OrgPatch struct {
	Name    *string `json:"name"`
	License *string `json:"license"`
	Country *string `json:"country"`
	Domain  *string `json:"domain"`
}

type TeamPatch struct {
	Name *string `json:"name"`
	Dept *string `json:"dept"`
	KPIs *string `json:"kpis"`
}

type UserPatch struct {
	Name            *string `json:"name"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Title           *string `json:"title"`
	PersonalLicense *string `json:"personal_license"`
	Projects        *string `json:"projects"`
}

type NamingPatch struct {
	Org     *string `json:"org"`
	Team    *string `json:"team"`
	User    *string `json:"user"`
	Artist  *string `json:"artist"`
	IP      *string `json:"ip"`
	Project *string `json:"project"`
}

// ConnectorPatch toggles connectors on or off and optionally flips the
// deferred-connect flag.
type ConnectorPatch struct {
	Set      map[string]bool `json:"set"`
	Deferred *bool           `json:"deferred"`
}

// PatchOrg applies a partial organization update. Setting the business
// domain triggers the predictive autofill of the team name and the
// connector preselection, each applied at most once per session and
// each recorded in the evidence log.
func (s *Session) PatchOrg(p OrgPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.License != nil && *p.License != "" && !contains(catalog.Licenses, *p.License) {
		return fmt.Errorf("unknown license %q", *p.License)
	}
	if p.Domain != nil && *p.Domain != "" && !contains(catalog.Domains, *p.Domain) {
		return fmt.Errorf("unknown domain %q", *p.Domain)
	}

	applyString(&s.org.Name, p.Name)
	applyString(&s.org.License, p.License)
	applyString(&s.org.Country, p.Country)
	applyString(&s.org.Domain, p.Domain)

	if s.org.Domain == "" {
		return nil
	}

	if s.team.Name == "" && !s.teamAutofilled {
		guess := engine.PredictTeamName(s.org.Domain)
		s.team.Name = guess
		s.teamAutofilled = true
		s.evidence.Record(
			engine.SourceHeuristic,
			fmt.Sprintf("predictTeamName(%s)", s.org.Domain),
			0.6,
			"autofill:team.name="+guess,
			[]string{"team.name"},
		)
	}

	if len(s.connectors) == 0 && !s.connectorsPreselect {
		picks := engine.PredictConnectors(s.org.Domain)
		fields := make([]string, 0, len(picks))
		for _, k := range picks {
			s.connectors[k] = true
			fields = append(fields, "connect."+k)
		}
		s.connectorsPreselect = true
		s.evidence.Record(
			engine.SourceHeuristic,
			fmt.Sprintf("predictConnectors(%s)", s.org.Domain),
			0.65,
			"preselect:"+strings.Join(picks, ","),
			fields,
		)
	}

	return nil
}

// PatchTeam applies a partial team update.
func (s *Session) PatchTeam(p TeamPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.Dept != nil && *p.Dept != "" && !contains(catalog.Departments, *p.Dept) {
		return fmt.Errorf("unknown department %q", *p.Dept)
	}

	applyString(&s.team.Name, p.Name)
	applyString(&s.team.Dept, p.Dept)
	applyString(&s.team.KPIs, p.KPIs)
	return nil
}

// PatchUser applies a partial user update.
func (s *Session) PatchUser(p UserPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.PersonalLicense != nil && *p.PersonalLicense != "" && !contains(catalog.Licenses, *p.PersonalLicense) {
		return fmt.Errorf("unknown license %q", *p.PersonalLicense)
	}

	applyString(&s.user.Name, p.Name)
	applyString(&s.user.Email, p.Email)
	applyString(&s.user.Title, p.Title)
	applyString(&s.user.PersonalLicense, p.PersonalLicense)
	applyString(&s.user.Projects, p.Projects)
	return nil
}

// PatchNaming applies naming-convention overrides.
func (s *Session) PatchNaming(p NamingPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	applyString(&s.naming.Org, p.Org)
	applyString(&s.naming.Team, p.Team)
	applyString(&s.naming.User, p.User)
	applyString(&s.naming.Artist, p.Artist)
	applyString(&s.naming.IP, p.IP)
	applyString(&s.naming.Project, p.Project)
	return nil
}

// PatchConnectors toggles connectors. Unknown connector keys are
// rejected against the catalog.
func (s *Session) PatchConnectors(p ConnectorPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range p.Set {
		if _, ok := s.catalog.Lookup(key); !ok {
			return fmt.Errorf("unknown connector %q", key)
		}
	}
	for key, live := range p.Set {
		s.connectors[key] = live
	}
	if p.Deferred != nil {
		s.deferred = *p.Deferred
	}
	return nil
}

// AddArtist appends one roster entry with a fresh id.
func (s *Session) AddArtist(name string) (engine.ArtistForm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(name) == "" {
		return engine.ArtistForm{}, fmt.Errorf("artist name is required")
	}
	a := engine.ArtistForm{
		ID:   engine.MakeID(string(engine.NodeArtist), name),
		Name: name,
	}
	s.artists = append(s.artists, a)
	return a, nil
}

// ReplaceArtists swaps the whole roster. Entries without an id get a
// fresh one.
func (s *Session) ReplaceArtists(artists []engine.ArtistForm) []engine.ArtistForm {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]engine.ArtistForm, 0, len(artists))
	for _, a := range artists {
		if a.ID == "" {
			a.ID = engine.MakeID(string(engine.NodeArtist), a.Name)
		}
		out = append(out, a)
	}
	s.artists = out
	return append([]engine.ArtistForm{}, out...)
}

// RemoveArtist deletes one roster entry by id.
func (s *Session) RemoveArtist(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.artists {
		if a.ID == id {
			s.artists = append(s.artists[:i], s.artists[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("artist %q not found", id)
}

// AddGlossary appends a glossary entry. Keys must be unique.
func (s *Session) AddGlossary(item catalog.GlossaryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.Key == "" {
		return fmt.Errorf("glossary key is required")
	}
	for _, g := range s.glossary {
		if g.Key == item.Key {
			return fmt.Errorf("glossary key %q already defined", item.Key)
		}
	}
	s.glossary = append(s.glossary, item)
	return nil
}

// Goto moves the wizard to an explicit step. Entering the artists step
// with an empty roster seeds it from the configured roster strategy and
// records the seeding as web evidence, once per session.
func (s *Session) Goto(step Step) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if stepIndex(step) < 0 {
		return fmt.Errorf("unknown step %q", step)
	}
	s.step = step
	s.maybeSeedRoster()
	return nil
}

// Next advances to the following step, clamping at review.
func (s *Session) Next() Step {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := stepIndex(s.step)
	if i < len(stepOrder)-1 {
		s.step = stepOrder[i+1]
	}
	s.maybeSeedRoster()
	return s.step
}

// Prev moves back one step, clamping at the organization step.
func (s *Session) Prev() Step {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := stepIndex(s.step)
	if i > 0 {
		s.step = stepOrder[i-1]
	}
	return s.step
}

func (s *Session) maybeSeedRoster() {
	if s.step != StepArtists || s.rosterSeeded || len(s.artists) > 0 || s.org.Name == "" {
		return
	}

	seeds := engine.PredictArtistRoster(s.org.Name, s.team.Name, s.roster)
	names := make([]string, 0, len(seeds))
	fields := make([]string, 0, len(seeds))
	for _, seed := range seeds {
		s.artists = append(s.artists, engine.ArtistForm{ID: seed.ID, Name: seed.Name, Attrs: seed.Attrs})
		names = append(names, seed.Name)
		fields = append(fields, "artist."+seed.Name)
	}
	s.rosterSeeded = true
	s.evidence.Record(
		engine.SourceWeb,
		"public_music_graph:"+engine.Slug(s.org.Name),
		0.55,
		"seed:artists="+strings.Join(names, ","),
		fields,
	)
}

// Completion reports the percentage of tracked onboarding fields that
// are filled in.
func (s *Session) Completion() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completionLocked()
}

func (s *Session) completionLocked() int {
	checks := []bool{
		s.org.Name != "",
		s.org.License != "",
		s.org.Domain != "",
		s.team.Name != "",
		s.team.Dept != "",
		s.user.Name != "",
		s.user.Email != "",
		s.user.Title != "",
		len(s.glossary) > 0,
		len(s.artists) > 0,
	}
	filled := 0
	for _, ok := range checks {
		if ok {
			filled++
		}
	}
	return (filled*100 + len(checks)/2) / len(checks)
}

// Finalize materializes the forms into the context graph, captures the
// seed snapshot and moves the wizard to the review step.
func (s *Session) Finalize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := engine.Finalize(s.graph, s.org, s.team, s.user, s.artists, s.naming); err != nil {
		return err
	}

	s.memory = &Snapshot{
		Org:             s.org,
		Team:            s.team,
		User:            s.user,
		Connectors:      s.liveConnectorsLocked(),
		Naming:          s.naming,
		Artists:         append([]engine.ArtistForm{}, s.artists...),
		Glossary:        append([]catalog.GlossaryItem{}, s.glossary...),
		DeferredConnect: s.deferred,
		SeededAt:        time.Now(),
		Evidence:        s.evidence.All(),
	}
	s.step = StepReview
	return nil
}

// Enrich runs one enrichment tick against the current graph using the
// number of currently live connectors.
func (s *Session) Enrich() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.graph.RescoreAll(len(s.liveConnectorsLocked()), s.evidence)
}

// Research simulates a deep-research pass, recording the web signal it
// would have found.
func (s *Session) Research() engine.Evidence {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evidence.Record(
		engine.SourceWeb,
		"press.release:Artist Priority Campaign",
		0.62,
		"suggest:artists+projects",
		[]string{"artists.*", "user.projects"},
	)
}

// Evidence returns the log, newest first when desc is set.
func (s *Session) Evidence(desc bool) []engine.Evidence {
	s.mu.Lock()
	defer s.mu.Unlock()
	if desc {
		return s.evidence.Reversed()
	}
	return s.evidence.All()
}

// Suggestions is the current set of heuristic proposals, computed
// without mutating anything.
type Suggestions struct {
	TeamName   string              `json:"team_name"`
	Connectors []string            `json:"connectors"`
	Roster     []engine.ArtistSeed `json:"roster"`
}

// Suggest returns the heuristics' proposals for the current form state.
func (s *Session) Suggest() Suggestions {
	s.mu.Lock()
	defer s.mu.Unlock()

	connectors := engine.PredictConnectors(s.org.Domain)
	sort.Strings(connectors)
	return Suggestions{
		TeamName:   engine.PredictTeamName(s.org.Domain),
		Connectors: connectors,
		Roster:     engine.PredictArtistRoster(s.org.Name, s.team.Name, s.roster),
	}
}

// Guidance returns the scripted co-pilot line for the current step.
func (s *Session) Guidance() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copilot.Script(string(s.step), copilot.FormStatus{
		OrgComplete:  s.org.Name != "" && s.org.License != "" && s.org.Domain != "",
		TeamComplete: s.team.Name != "" && s.team.Dept != "",
		UserComplete: s.user.Name != "" && s.user.Email != "" && s.user.Title != "",
	})
}

func (s *Session) liveConnectorsLocked() []string {
	keys := make([]string, 0, len(s.connectors))
	for k, live := range s.connectors {
		if live {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
