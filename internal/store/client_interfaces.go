package store

import (
	"context"

	"github.com/MKhiriev/guest-nama/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/session_store_mock.go -package=mock

// SessionStore is the client's durable slot for the current session. It
// holds at most one session under [models.SessionKey].
type SessionStore interface {
	// Get returns the persisted session. ok is false when the slot is empty.
	// A record that cannot be decoded yields [ErrCorruptSession].
	Get(ctx context.Context) (session models.Session, ok bool, err error)
	// Set replaces the slot content with session.
	Set(ctx context.Context, session models.Session) error
	// Clear empties the slot. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
}
