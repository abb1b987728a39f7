package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/guest-nama/internal/config"
	"github.com/MKhiriev/guest-nama/internal/logger"
	"github.com/MKhiriev/guest-nama/models"
)

// RefreshWorker recomputes the dashboard on a fixed interval and hands every
// fresh snapshot to onUpdate. A failed refresh is logged; the refresher keeps
// its previous snapshot.
type RefreshWorker struct {
	refresher Refresher
	interval  time.Duration
	onUpdate  func(models.DerivedMetrics)

	logger *logger.Logger
}

// NewRefreshWorker returns a RefreshWorker. A non-positive interval selects
// config.DefaultRefreshInterval.
func NewRefreshWorker(refresher Refresher, interval time.Duration, onUpdate func(models.DerivedMetrics), logger *logger.Logger) *RefreshWorker {
	if interval <= 0 {
		interval = config.DefaultRefreshInterval
	}
	return &RefreshWorker{refresher: refresher, interval: interval, onUpdate: onUpdate, logger: logger}
}

func (w *RefreshWorker) Run(ctx context.Context) {
	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			metrics, err := w.refresher.Refresh(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				w.logger.Warn().Err(err).Msg("dashboard refresh failed, showing previous snapshot")
				continue
			}
			if w.onUpdate != nil {
				w.onUpdate(metrics)
			}
		}
	}
}
