// Package session tracks per-user progress from catalog fetch through course selection to report delivery.
package session

import "sync"

// Manager maps user identifiers to their selection sessions.
// Sessions of distinct users are fully independent; the mutex only guards
// the mapping itself, never the per-session operations.
type Manager struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

// NewManager initializes an empty session registry.
func NewManager() *Manager {
	return &Manager{sessions: make(map[int64]*Session)}
}

// Get returns the session for a user, creating an Idle one on first access.
func (m *Manager) Get(userID int64) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[userID]
	if !ok {
		s = &Session{}
		m.sessions[userID] = s
	}
	return s
}

// Reset discards a user's session entirely.
// The user's quality preference is stored elsewhere and survives this.
func (m *Manager) Reset(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, userID)
}
