// Package workers runs the client's long-lived background loops.
// It defines the Worker interface and a Workers aggregate that runs several
// workers until their context is cancelled.
package workers

import (
	"context"

	"github.com/MKhiriev/guest-nama/models"
)

// Worker is a background loop. Run blocks until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

// Refresher recomputes dashboard metrics. service.Dashboard satisfies it.
type Refresher interface {
	Refresh(ctx context.Context) (models.DerivedMetrics, error)
}
