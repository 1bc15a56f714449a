package search

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/pushpakrawat/veekend/internal/places"
	"github.com/pushpakrawat/veekend/platform/config"
	"github.com/pushpakrawat/veekend/platform/logger"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session does not exist or is not
// owned by the requesting user. The two cases are deliberately
// indistinguishable to callers.
var ErrSessionNotFound = errors.New("search session not found")

const sweepInterval = 5 * time.Minute

// Manager owns all live search sessions. Sessions are in-memory and expire
// after an idle TTL; expiry loses accumulated results and the continuation
// token, which is acceptable given provider tokens expire server-side anyway.
type Manager struct {
	gw      places.Gateway
	log     *logger.Logger
	idleTTL time.Duration

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewManager creates a session manager backed by the given gateway.
func NewManager(cfg config.SessionConfig, gw places.Gateway, log *logger.Logger) *Manager {
	return &Manager{
		gw:       gw,
		log:      log,
		idleTTL:  cfg.GetSessionIdleTTL(),
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Create starts a new session for the owner and returns it.
func (m *Manager) Create(owner uuid.UUID) *Session {
	session := NewSession(owner, m.gw, m.log)

	m.mu.Lock()
	m.sessions[session.ID()] = session
	m.mu.Unlock()

	return session
}

// Get returns the session by id, enforcing ownership.
func (m *Manager) Get(id, owner uuid.UUID) (*Session, error) {
	m.mu.RLock()
	session, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok || session.Owner() != owner {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Delete removes a session, enforcing ownership.
func (m *Manager) Delete(id, owner uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok || session.Owner() != owner {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

// Run sweeps idle sessions until the context is canceled.
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sweep()
		}
	}
}

func (m *Manager) sweep() {
	cutoff := time.Now().Add(-m.idleTTL)

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, session := range m.sessions {
		if session.LastActive().Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		m.log.Info("expired idle search sessions", "count", removed, "remaining", len(m.sessions))
	}
}
