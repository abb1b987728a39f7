package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/guest-nama/internal/logger"
	"github.com/MKhiriev/guest-nama/models"
)

const (
	selectSession = `SELECT value FROM sessions WHERE key = ?;`

	upsertSession = `INSERT INTO sessions (key, value, updated_at) VALUES (?, ?, ?)
    ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`

	deleteSession = `DELETE FROM sessions WHERE key = ?;`
)

// sqliteSessionStore keeps the session as a JSON document in the client's
// SQLite file so it survives process restarts.
type sqliteSessionStore struct {
	*DB
	logger *logger.Logger
}

func NewSQLiteSessionStore(db *DB, logger *logger.Logger) SessionStore {
	return &sqliteSessionStore{
		DB:     db,
		logger: logger,
	}
}

func (s *sqliteSessionStore) Get(ctx context.Context) (models.Session, bool, error) {
	var raw string
	err := s.DB.QueryRowContext(ctx, selectSession, models.SessionKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, false, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteSessionStore.Get").Msg("failed to read session")
		return models.Session{}, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	session, err := decodeSession([]byte(raw))
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "sqliteSessionStore.Get").Msg("persisted session is unreadable")
		return models.Session{}, false, err
	}

	return session, true, nil
}

func (s *sqliteSessionStore) Set(ctx context.Context, session models.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if _, err = s.DB.ExecContext(ctx, upsertSession, models.SessionKey, string(payload), time.Now().UTC()); err != nil {
		s.logger.Err(err).Str("func", "sqliteSessionStore.Set").Str("user_id", session.ID).Msg("failed to persist session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteSessionStore) Clear(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, deleteSession, models.SessionKey); err != nil {
		s.logger.Err(err).Str("func", "sqliteSessionStore.Clear").Msg("failed to clear session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// decodeSession parses a persisted record. A record without an id is as
// useless as an unparsable one.
func decodeSession(raw []byte) (models.Session, error) {
	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrCorruptSession, err)
	}
	if session.IsZero() {
		return models.Session{}, ErrCorruptSession
	}
	return session, nil
}
