package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/guest-nama/internal/logger"
	"github.com/MKhiriev/guest-nama/migrations"
)

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB wraps a *sql.DB with the migration dialect and the error classifier of
// its driver.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// readRetryDelays are the pauses between attempts of an idempotent read.
var readRetryDelays = []time.Duration{50 * time.Millisecond, 200 * time.Millisecond}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// retryRead runs op and repeats it while the classifier marks its error as
// [Retryable] and ctx is alive. Only idempotent reads go through here.
func (db *DB) retryRead(ctx context.Context, op func() error) error {
	err := op()
	if db.errorClassificator == nil {
		return err
	}

	for _, delay := range readRetryDelays {
		if err == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).Dur("delay", delay).Msg("retrying read after transient database error")

		select {
		case <-ctx.Done():
			return err
		case <-time.After(delay):
		}

		err = op()
	}

	return err
}
