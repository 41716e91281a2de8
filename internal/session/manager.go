package session

import (
	"context"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/sync/errgroup"

	"github.com/wavo-hq/onboarding/backend/pkg/engine"
	"github.com/wavo-hq/onboarding/backend/pkg/engine/catalog"
	"github.com/wavo-hq/onboarding/backend/pkg/logger"
)

// Manager tracks all live sessions and drives the background
// enrichment loop across them.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	catalog catalog.Catalog
	roster  engine.RosterStrategy

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewManager creates an empty session manager. A nil roster strategy
// falls back to the built-in pattern table.
func NewManager(cat catalog.Catalog, roster engine.RosterStrategy) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		catalog:  cat,
		roster:   roster,
	}
}

// Create starts a new onboarding session.
func (m *Manager) Create() *Session {
	id, _ := gonanoid.New()
	s := newSession(id, m.catalog, m.roster)

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	logger.Debug("session created", "session", id)
	return s
}

// Get looks up a session by id.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Delete removes a session. It reports whether the session existed.
func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// EnrichAll runs one enrichment tick on every live session
// concurrently and waits for all of them.
func (m *Manager) EnrichAll(ctx context.Context) error {
	m.mu.RLock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.RUnlock()

	group, ctx := errgroup.WithContext(ctx)
	for _, s := range sessions {
		s := s
		group.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			s.Enrich()
			return nil
		})
	}
	return group.Wait()
}

// StartEnrichment launches the periodic enrichment loop. It runs until
// Stop is called.
func (m *Manager) StartEnrichment(interval time.Duration) {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		logger.Info("enrichment loop started", "interval", interval.String())
		for {
			select {
			case <-ctx.Done():
				logger.Info("enrichment loop stopped")
				return
			case <-ticker.C:
				if err := m.EnrichAll(ctx); err != nil {
					logger.Warn("enrichment tick aborted", "error", err)
				}
			}
		}
	}()
}

// Stop cancels the enrichment loop and waits for it to exit. Safe to
// call when the loop was never started.
func (m *Manager) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	m.wg.Wait()
	m.cancel = nil
}
