package search

import (
	"testing"
	"time"

	"github.com/pushpakrawat/veekend/platform/logger"

	"github.com/google/uuid"
)

type fakeSessionConfig struct {
	idleTTL time.Duration
}

func (c fakeSessionConfig) GetSessionIdleTTL() time.Duration { return c.idleTTL }

func TestManagerCreateAndGet(t *testing.T) {
	m := NewManager(fakeSessionConfig{idleTTL: time.Hour}, &fakeGateway{}, logger.New("test"))
	owner := uuid.New()

	created := m.Create(owner)

	got, err := m.Get(created.ID(), owner)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != created {
		t.Fatal("get returned a different session")
	}
}

func TestManagerGetEnforcesOwnership(t *testing.T) {
	m := NewManager(fakeSessionConfig{idleTTL: time.Hour}, &fakeGateway{}, logger.New("test"))
	created := m.Create(uuid.New())

	if _, err := m.Get(created.ID(), uuid.New()); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound for foreign owner, got %v", err)
	}
	if _, err := m.Get(uuid.New(), created.Owner()); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound for unknown id, got %v", err)
	}
}

func TestManagerDelete(t *testing.T) {
	m := NewManager(fakeSessionConfig{idleTTL: time.Hour}, &fakeGateway{}, logger.New("test"))
	owner := uuid.New()
	created := m.Create(owner)

	if err := m.Delete(created.ID(), uuid.New()); err != ErrSessionNotFound {
		t.Fatalf("foreign owner must not delete, got %v", err)
	}
	if err := m.Delete(created.ID(), owner); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := m.Get(created.ID(), owner); err != ErrSessionNotFound {
		t.Fatal("session still reachable after delete")
	}
}

func TestManagerSweepExpiresIdleSessions(t *testing.T) {
	m := NewManager(fakeSessionConfig{idleTTL: time.Minute}, &fakeGateway{}, logger.New("test"))
	owner := uuid.New()
	stale := m.Create(owner)
	fresh := m.Create(owner)

	stale.mu.Lock()
	stale.lastActive = time.Now().Add(-2 * time.Minute)
	stale.mu.Unlock()

	m.sweep()

	if _, err := m.Get(stale.ID(), owner); err != ErrSessionNotFound {
		t.Fatal("idle session survived sweep")
	}
	if _, err := m.Get(fresh.ID(), owner); err != nil {
		t.Fatalf("active session swept: %v", err)
	}
}
