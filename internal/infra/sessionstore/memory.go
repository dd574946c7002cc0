package sessionstore

import (
	"context"
	"sync"
	"time"

	"apartment-booking/internal/domain/booking"
	"apartment-booking/internal/infra"
	"apartment-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type memoryEntry struct {
	snap      booking.Snapshot
	expiresAt time.Time
}

// MemoryStore keeps sessions as snapshots so callers never share a *booking.Session.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[uuid.UUID]memoryEntry
	ttl     time.Duration
	clock   clock.Clock
}

func NewMemoryStore(ttl time.Duration, clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		entries: make(map[uuid.UUID]memoryEntry),
		ttl:     ttl,
		clock:   clk,
	}
}

func (m *MemoryStore) Get(_ context.Context, id uuid.UUID) (*booking.Session, error) {
	m.mu.Lock()
	entry, ok := m.entries[id]
	if ok && !m.clock.Now().Before(entry.expiresAt) {
		delete(m.entries, id)
		ok = false
	}
	m.mu.Unlock()

	if !ok {
		return nil, infra.WrapRepoErr("booking session not found", nil, infra.KindNotFound)
	}

	s, err := booking.ReconstructSession(entry.snap)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to restore booking session", err, infra.KindCorruptData)
	}
	return s, nil
}

// Save refreshes the expiry on every write.
func (m *MemoryStore) Save(_ context.Context, s *booking.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[s.ID()] = memoryEntry{
		snap:      s.Snapshot(),
		expiresAt: m.clock.Now().Add(m.ttl),
	}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, id)
	return nil
}

// Sweep drops expired sessions and reports how many were removed.
func (m *MemoryStore) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()
	removed := 0
	for id, entry := range m.entries {
		if !now.Before(entry.expiresAt) {
			delete(m.entries, id)
			removed++
		}
	}
	return removed
}
