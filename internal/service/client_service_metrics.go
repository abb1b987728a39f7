package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/guest-nama/internal/adapter"
	"github.com/MKhiriev/guest-nama/internal/logger"
	"github.com/MKhiriev/guest-nama/models"
	"golang.org/x/sync/errgroup"
)

type metricsAggregator struct {
	adapter adapter.StorageAdapter

	// fetchTimeout bounds one computation; zero means no bound.
	fetchTimeout time.Duration
	now          func() time.Time

	logger *logger.Logger
}

// NewMetricsAggregator returns a MetricsAggregator reading from
// storageAdapter.
func NewMetricsAggregator(storageAdapter adapter.StorageAdapter, fetchTimeout time.Duration, logger *logger.Logger) MetricsAggregator {
	return &metricsAggregator{
		adapter:      storageAdapter,
		fetchTimeout: fetchTimeout,
		now:          time.Now,
		logger:       logger,
	}
}

// Compute implements MetricsAggregator. The three fetches run in parallel
// and are started in the order guests, finance, tasks. When one fails the
// shared context is cancelled and that first error is returned.
func (a *metricsAggregator) Compute(ctx context.Context, session models.Session) (models.DerivedMetrics, error) {
	if session.IsZero() {
		return models.DerivedMetrics{}, ErrNotAuthenticated
	}

	if a.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.fetchTimeout)
		defer cancel()
	}

	var (
		guests  []models.Guest
		finance []models.FinanceEntry
		tasks   []models.Task
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		guests, err = a.adapter.GetGuests(gctx, session.ID, session.Role)
		return err
	})
	g.Go(func() error {
		var err error
		finance, err = a.adapter.GetFinance(gctx, session.ID)
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = a.adapter.GetTasks(gctx, session.ID)
		return err
	})

	if err := g.Wait(); err != nil {
		return models.DerivedMetrics{}, fmt.Errorf("fetch dashboard data: %w", err)
	}

	metrics := models.Aggregate(guests, finance, tasks, a.now().UTC())
	a.logger.Debug().
		Int("guests", len(guests)).
		Int("finance_entries", len(finance)).
		Int("tasks", len(tasks)).
		Msg("metrics computed")

	return metrics, nil
}
