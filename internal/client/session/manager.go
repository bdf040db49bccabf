package session

import (
	"sync"

	"github.com/mycomarket/mycomarket-go/internal/client/models"
)

// Manager is the single mutable holder of the current session. The HTTP
// transport reads it before every request; login, refresh, and logout are
// the only writers.
type Manager struct {
	mu     sync.Mutex
	store  Store
	loaded bool
	cur    *models.Session
	prof   *models.UserProfile
}

// NewManager returns a Manager over the given store. Persisted state is
// loaded lazily on first access.
func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Current returns the active session, or nil when logged out. Storage
// problems degrade to "no session"; they never fail the caller.
func (m *Manager) Current() *models.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadLocked()
	return m.cur
}

// Profile returns the cached user profile, or nil when logged out.
func (m *Manager) Profile() *models.UserProfile {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadLocked()
	return m.prof
}

// Set persists and activates a new session/profile pair.
func (m *Manager) Set(s *models.Session, p *models.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.store.Save(s, p); err != nil {
		return err
	}
	m.cur, m.prof, m.loaded = s, p, true
	return nil
}

// SetProfile replaces only the cached profile (e.g. after a profile edit
// or a become-a-farmer upgrade), keeping the current tokens.
func (m *Manager) SetProfile(p *models.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadLocked()
	if m.cur == nil {
		return nil
	}
	if err := m.store.Save(m.cur, p); err != nil {
		return err
	}
	m.prof = p
	return nil
}

// Clear drops the in-memory pair and wipes the store. Idempotent.
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cur, m.prof, m.loaded = nil, nil, true
	return m.store.Clear()
}

func (m *Manager) loadLocked() {
	if m.loaded {
		return
	}
	m.loaded = true
	s, p, err := m.store.Load()
	if err != nil {
		return
	}
	m.cur, m.prof = s, p
}
