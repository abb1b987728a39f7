// Package migrations embeds the goose schema migrations of both databases:
// the server's PostgreSQL store and the client's SQLite session file.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/pressly/goose/v3"
)

// Dialect selects which migration set is applied.
type Dialect string

const (
	// DialectPostgres applies the server schema (users, guests, finance, tasks).
	DialectPostgres Dialect = "postgres"
	// DialectSQLite applies the client schema (sessions).
	DialectSQLite Dialect = "sqlite"
)

var ErrUnknownDialect = errors.New("unknown migration dialect")

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// goose keeps its FS and dialect in package state.
var gooseMu sync.Mutex

func Migrate(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	var gooseDialect string
	switch dialect {
	case DialectPostgres:
		gooseDialect = "pgx"
	case DialectSQLite:
		gooseDialect = "sqlite3"
	default:
		return fmt.Errorf("migration error: %w: %q", ErrUnknownDialect, dialect)
	}

	dir, err := fs.Sub(embedMigrations, string(dialect))
	if err != nil {
		return fmt.Errorf("migration error opening %s migrations: %w", dialect, err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(dir)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
