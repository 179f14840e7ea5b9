package persistence

import (
	"context"
	"sync"

	"github.com/hupe1980/mirrorskill/core"
)

// InMemoryStore is a volatile AttributesStore keeping one State per user in a
// process local map. It is safe for concurrent access and best suited for
// tests, the local CLI and deployments without a configured bucket.
type InMemoryStore struct {
	mu     sync.RWMutex
	states map[string]core.State // userID -> state
}

// NewInMemoryStore constructs an empty in‑memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{states: make(map[string]core.State)}
}

// Get returns the stored state for the user or the zero State.
func (m *InMemoryStore) Get(_ context.Context, userID string) (core.State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.states[userID], nil
}

// Save stores (or overwrites) the state for the user.
func (m *InMemoryStore) Save(_ context.Context, userID string, state core.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[userID] = state
	return nil
}

// Delete removes the state for the user. Deleting a missing entry is not an error.
func (m *InMemoryStore) Delete(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, userID)
	return nil
}

// Len returns the number of users with stored state.
func (m *InMemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.states)
}
