package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/guest-nama/internal/config"
	"github.com/MKhiriev/guest-nama/internal/logger"
)

// ClientStorages groups the client-side storage. The session slot is the only
// state the client keeps between runs.
type ClientStorages struct {
	SessionStore SessionStore

	db *DB
}

// NewClientStorages initialises the client storage layer.
//
// With the [config.MemoryDSN] DSN the session lives in process memory only.
// Otherwise it:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the file if needed.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Returns a [ClientStorages] wired to an SQLite-backed [SessionStore].
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	if cfg.DB.DSN == config.MemoryDSN {
		logger.Debug().Msg("using in-memory session store")
		return &ClientStorages{SessionStore: NewMemorySessionStore()}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionStore: NewSQLiteSessionStore(db, logger),
		db:           db,
	}, nil
}

// Close releases the underlying database, if any.
func (c *ClientStorages) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
