package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/guest-nama/internal/logger"
	"github.com/MKhiriev/guest-nama/models"
)

type dashboard struct {
	sessions   SessionManager
	aggregator MetricsAggregator

	mu       sync.RWMutex
	snapshot models.DerivedMetrics
	hasData  bool
	loading  bool
	lastErr  error
	// generation is bumped by Reset; a refresh started in an older
	// generation must not publish its result.
	generation uint64

	logger *logger.Logger
}

// NewDashboard returns a Dashboard computing metrics for the session held by
// sessions.
func NewDashboard(sessions SessionManager, aggregator MetricsAggregator, logger *logger.Logger) Dashboard {
	return &dashboard{sessions: sessions, aggregator: aggregator, logger: logger}
}

// Load implements Dashboard. IsLoading reports true while it runs.
func (d *dashboard) Load(ctx context.Context) (models.DerivedMetrics, error) {
	d.mu.Lock()
	d.loading = true
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.loading = false
		d.mu.Unlock()
	}()

	return d.compute(ctx)
}

// Refresh implements Dashboard.
func (d *dashboard) Refresh(ctx context.Context) (models.DerivedMetrics, error) {
	return d.compute(ctx)
}

func (d *dashboard) compute(ctx context.Context) (models.DerivedMetrics, error) {
	d.mu.RLock()
	generation := d.generation
	d.mu.RUnlock()

	session, ok := d.sessions.Current()
	if !ok {
		d.recordError(generation, ErrNotAuthenticated)
		return models.DerivedMetrics{}, ErrNotAuthenticated
	}

	metrics, err := d.aggregator.Compute(ctx, session)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", session.ID).Msg("dashboard refresh failed, keeping previous snapshot")
		d.recordError(generation, err)
		return models.DerivedMetrics{}, err
	}

	d.mu.Lock()
	if d.generation != generation {
		d.mu.Unlock()
		logger.FromContext(ctx).Debug().Str("user_id", session.ID).Msg("dashboard reset during refresh, dropping result")
		return models.DerivedMetrics{}, ErrDashboardReset
	}
	d.snapshot = metrics
	d.hasData = true
	d.lastErr = nil
	d.mu.Unlock()

	return metrics, nil
}

func (d *dashboard) recordError(generation uint64, err error) {
	d.mu.Lock()
	if d.generation == generation {
		d.lastErr = err
	}
	d.mu.Unlock()
}

func (d *dashboard) Snapshot() (models.DerivedMetrics, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.snapshot, d.hasData
}

func (d *dashboard) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.generation++
	d.snapshot = models.DerivedMetrics{}
	d.hasData = false
	d.lastErr = nil
}

func (d *dashboard) LastError() error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lastErr
}

func (d *dashboard) IsLoading() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.loading
}
