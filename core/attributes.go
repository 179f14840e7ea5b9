package core

import (
	"context"
	"fmt"
)

// AttributesManager is the per-turn view of session and persistent state.
//
// Contract:
//   - Session state is seeded from the envelope's session attributes and
//     echoed back in the response envelope
//   - Persistent state is loaded lazily on first access and cached for the
//     rest of the turn
//   - SavePersistent writes the cached persistent state; nothing is written
//     implicitly.
type AttributesManager struct {
	envelope   *RequestEnvelope
	store      AttributesStore
	session    State
	persistent State
	loaded     bool
}

// NewAttributesManager creates a manager for one turn. store may be nil, in
// which case persistent access returns ErrNoStore.
func NewAttributesManager(envelope *RequestEnvelope, store AttributesStore) *AttributesManager {
	m := &AttributesManager{envelope: envelope, store: store}
	if envelope != nil && envelope.Session != nil && envelope.Session.Attributes != nil {
		m.session = *envelope.Session.Attributes
	}
	return m
}

// SessionState returns the current session state.
func (m *AttributesManager) SessionState() State { return m.session }

// SetSessionState replaces the session state for the remainder of the turn.
func (m *AttributesManager) SetSessionState(s State) { m.session = s }

// PersistentState returns the persistent state for the requesting user,
// loading it from the store on first use.
func (m *AttributesManager) PersistentState(ctx context.Context) (State, error) {
	if m.loaded {
		return m.persistent, nil
	}
	userID, err := m.userID()
	if err != nil {
		return State{}, err
	}
	s, err := m.store.Get(ctx, userID)
	if err != nil {
		return State{}, fmt.Errorf("failed to load persistent attributes: %w", err)
	}
	m.persistent = s
	m.loaded = true
	return s, nil
}

// SetPersistentState replaces the cached persistent state. Call
// SavePersistent to write it.
func (m *AttributesManager) SetPersistentState(s State) {
	m.persistent = s
	m.loaded = true
}

// SavePersistent writes the cached persistent state through the store.
func (m *AttributesManager) SavePersistent(ctx context.Context) error {
	userID, err := m.userID()
	if err != nil {
		return err
	}
	if !m.loaded {
		return nil
	}
	if err := m.store.Save(ctx, userID, m.persistent); err != nil {
		return fmt.Errorf("failed to save persistent attributes: %w", err)
	}
	return nil
}

// DeletePersistent removes the stored state for the user and clears the cache.
func (m *AttributesManager) DeletePersistent(ctx context.Context) error {
	userID, err := m.userID()
	if err != nil {
		return err
	}
	if err := m.store.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete persistent attributes: %w", err)
	}
	m.persistent = State{}
	m.loaded = true
	return nil
}

func (m *AttributesManager) userID() (string, error) {
	if m.store == nil {
		return "", ErrNoStore
	}
	id := m.envelope.UserID()
	if id == "" {
		return "", ErrNoUserID
	}
	return id, nil
}
