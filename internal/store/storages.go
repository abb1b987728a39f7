package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/guest-nama/internal/config"
	"github.com/MKhiriev/guest-nama/internal/logger"
)

// Storages groups the server repositories over one PostgreSQL connection.
type Storages struct {
	UserRepository    UserRepository
	GuestRepository   GuestRepository
	FinanceRepository FinanceRepository
	TaskRepository    TaskRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds every
// repository.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		GuestRepository:   NewGuestRepository(db, logger),
		FinanceRepository: NewFinanceRepository(db, logger),
		TaskRepository:    NewTaskRepository(db, logger),
		db:                db,
	}
}

func (s *Storages) Close() error {
	return s.db.Close()
}
