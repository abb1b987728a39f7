package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/guest-nama/models"
)

// memorySessionStore is a process-local [SessionStore]. It stores the encoded
// record, not the struct, so it behaves like the SQLite store on bad input.
type memorySessionStore struct {
	mu  sync.Mutex
	raw []byte
}

func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{}
}

func (m *memorySessionStore) Get(_ context.Context) (models.Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.raw == nil {
		return models.Session{}, false, nil
	}

	session, err := decodeSession(m.raw)
	if err != nil {
		return models.Session{}, false, err
	}
	return session, true, nil
}

func (m *memorySessionStore) Set(_ context.Context, session models.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	m.mu.Lock()
	m.raw = payload
	m.mu.Unlock()
	return nil
}

func (m *memorySessionStore) Clear(_ context.Context) error {
	m.mu.Lock()
	m.raw = nil
	m.mu.Unlock()
	return nil
}

// SetRaw replaces the stored record with raw bytes. Used to exercise
// recovery from records written by other versions.
func (m *memorySessionStore) SetRaw(raw []byte) {
	m.mu.Lock()
	m.raw = raw
	m.mu.Unlock()
}
