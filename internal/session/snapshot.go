package session

import (
	"time"

	"github.com/wavo-hq/onboarding/backend/pkg/engine"
	"github.com/wavo-hq/onboarding/backend/pkg/engine/catalog"
)

// Snapshot is the seed memory captured at finalize time: everything the
// wizard knew, frozen, so downstream agents can be bootstrapped from it.
type Snapshot struct {
	Org             engine.OrgForm         `json:"org"`
	Team            engine.TeamForm        `json:"team"`
	User            engine.UserForm        `json:"user"`
	Connectors      []string               `json:"connectors"`
	Naming          engine.Naming          `json:"naming"`
	Artists         []engine.ArtistForm    `json:"artists"`
	Glossary        []catalog.GlossaryItem `json:"glossary"`
	DeferredConnect bool                   `json:"deferred_connect"`
	SeededAt        time.Time              `json:"seeded_at"`
	Evidence        []engine.Evidence      `json:"evidence"`
}

// SeedDocument is the downloadable export: the seed memory (nil before
// finalize) next to the versioned graph document.
type SeedDocument struct {
	Memory *Snapshot       `json:"memory"`
	Graph  engine.Document `json:"graph"`
}

// Export assembles the downloadable seed document for this session.
func (s *Session) Export() SeedDocument {
	s.mu.Lock()
	defer s.mu.Unlock()

	var memory *Snapshot
	if s.memory != nil {
		copied := *s.memory
		memory = &copied
	}
	return SeedDocument{
		Memory: memory,
		Graph:  engine.Export(s.graph, s.evidence),
	}
}

// View is the read model handed to HTTP clients.
type View struct {
	ID         string                 `json:"id"`
	Step       Step                   `json:"step"`
	Completion int                    `json:"completion"`
	Org        engine.OrgForm         `json:"org"`
	Team       engine.TeamForm        `json:"team"`
	User       engine.UserForm        `json:"user"`
	Connectors []string               `json:"connectors"`
	Deferred   bool                   `json:"deferred"`
	Naming     engine.Naming          `json:"naming"`
	Artists    []engine.ArtistForm    `json:"artists"`
	Glossary   []catalog.GlossaryItem `json:"glossary"`
	Graph      *engine.Graph          `json:"graph"`
	CreatedAt  time.Time              `json:"created_at"`
}

// View snapshots the session for reads. The graph is a deep copy, so
// callers can serialize it without holding the session lock.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := engine.Export(s.graph, s.evidence)
	return View{
		ID:         s.id,
		Step:       s.step,
		Completion: s.completionLocked(),
		Org:        s.org,
		Team:       s.team,
		User:       s.user,
		Connectors: s.liveConnectorsLocked(),
		Deferred:   s.deferred,
		Naming:     s.naming,
		Artists:    append([]engine.ArtistForm{}, s.artists...),
		Glossary:   append([]catalog.GlossaryItem{}, s.glossary...),
		Graph:      doc.Graph,
		CreatedAt:  s.createdAt,
	}
}
