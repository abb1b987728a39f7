package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/guest-nama/internal/logger"
	"github.com/MKhiriev/guest-nama/models"
	"github.com/jackc/pgerrcode"
)

type financeRepository struct {
	*DB
	logger *logger.Logger
}

func NewFinanceRepository(db *DB, logger *logger.Logger) FinanceRepository {
	return &financeRepository{
		DB:     db,
		logger: logger,
	}
}

func (f *financeRepository) ListFinance(ctx context.Context, userID string) ([]models.FinanceEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFinanceQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var entries []models.FinanceEntry
	err = f.retryRead(ctx, func() error {
		rows, err := f.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		entries = make([]models.FinanceEntry, 0, 32)
		for rows.Next() {
			var (
				item   models.FinanceEntry
				amount float64
			)
			if err := rows.Scan(&item.ID, &item.UserID, &item.Type, &amount, &item.Category, &item.Description, &item.Date, &item.CreatedAt); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			item.Amount = models.Number(amount)
			entries = append(entries, item)
		}

		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "financeRepository.ListFinance").Str("user_id", userID).Msg("failed to list finance entries")
		return nil, err
	}

	return entries, nil
}

func (f *financeRepository) CreateFinanceEntry(ctx context.Context, entry models.FinanceEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertFinanceQuery(entry)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = f.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "financeRepository.CreateFinanceEntry").Str("user_id", entry.UserID).Msg("failed to insert finance entry")
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrUnknownUser
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
