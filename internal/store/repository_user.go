package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/guest-nama/internal/logger"
	"github.com/MKhiriev/guest-nama/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions. Password
// hashes are never logged.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// ListUsers returns every account ordered by creation time.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	var users []models.User
	err := r.db.retryRead(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, selectAllUsers)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		users = make([]models.User, 0, 16)
		for rows.Next() {
			var u models.User
			if err := rows.Scan(&u.ID, &u.Name, &u.Phone, &u.Role, &u.PasswordHash, &u.CreatedAt); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			users = append(users, u)
		}

		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to list users")
		return nil, err
	}

	return users, nil
}

// CreateUser persists a new account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrPhoneAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, insertUser, user.ID, user.Name, user.Phone, string(user.Role), user.PasswordHash, user.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("user_id", user.ID).Msg("error inserting user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrPhoneAlreadyExists
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return nil
}

// UserExists reports whether the account with userID is still present.
func (r *userRepository) UserExists(ctx context.Context, userID string) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	err := r.db.retryRead(ctx, func() error {
		return r.db.QueryRowContext(ctx, userExists, userID).Scan(&exists)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UserExists").Str("user_id", userID).Msg("error checking user")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}
