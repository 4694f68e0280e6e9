package checkout

import (
	"context"
	"sync"
	"time"

	"roastline/models"
)

type memoryEntry struct {
	state     models.CheckoutState
	expiresAt time.Time
}

// MemorySessionStore is the in-process fallback used when no Redis address is
// configured (single-instance deployments and tests).
type MemorySessionStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

// NewMemorySessionStore builds an empty in-process store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{entries: make(map[string]memoryEntry)}
}

// Save stores a copy of the draft.
func (s *MemorySessionStore) Save(ctx context.Context, state *models.CheckoutState, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[state.SessionID] = memoryEntry{state: *state, expiresAt: time.Now().Add(ttl)}
	return nil
}

// Get retrieves a copy of the draft, ErrSessionNotFound when missing or expired.
func (s *MemorySessionStore) Get(ctx context.Context, id string) (*models.CheckoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, id)
		return nil, ErrSessionNotFound
	}
	state := entry.state
	return &state, nil
}

// Delete removes a draft.
func (s *MemorySessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}
