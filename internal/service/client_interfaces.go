package service

import (
	"context"
	"time"

	"github.com/MKhiriev/guest-nama/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// IDGenerator issues identifiers for new accounts and records.
type IDGenerator interface {
	Generate() string
}

// SessionManager owns the client's authenticated identity. It establishes a
// session from phone and password, persists it in the session store and
// keeps it confirmed against the storage server.
//
// The in-memory session and the persisted record are kept in step: a
// session is written to the store before it becomes visible in memory, and
// both are cleared together on logout or invalidation.
type SessionManager interface {
	// Init restores a persisted session after confirming it with the
	// storage server. Any failure on the way (unreadable record, network
	// error, rejected session) clears the session. IsLoading reports true
	// until Init returns.
	Init(ctx context.Context) error

	// Login looks up an account whose normalized phone and password hash
	// both match. A mismatch returns false without touching state. A fetch
	// failure is returned as an error.
	Login(ctx context.Context, phone, password string) (bool, error)

	// Signup creates a USER account and logs it in. It returns false when
	// the phone is empty or already registered.
	Signup(ctx context.Context, name, phone, password string) (bool, error)

	// Logout clears the session in memory and in the store. It never
	// contacts the storage server and is safe without a session.
	Logout(ctx context.Context)

	// Current returns the active session, if any.
	Current() (models.Session, bool)

	IsAuthenticated() bool
	IsLoading() bool

	// Invalidated delivers a value each time the storage server rejects the
	// active session during periodic revalidation.
	Invalidated() <-chan struct{}
}

// RevalidationJob periodically confirms a session with the storage server.
type RevalidationJob interface {
	// Start launches the background check for userID. It checks every
	// interval, defaulting to 5 minutes if interval is zero or negative.
	// Any previously running check is stopped before the new one begins.
	Start(ctx context.Context, userID string, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

// MetricsAggregator derives the dashboard statistics for a session.
type MetricsAggregator interface {
	// Compute fetches guests, finance entries and tasks concurrently and
	// aggregates them. The first fetch failure aborts the computation.
	Compute(ctx context.Context, session models.Session) (models.DerivedMetrics, error)
}

// Dashboard keeps the last successfully computed metrics.
type Dashboard interface {
	// Load performs the initial computation.
	Load(ctx context.Context) (models.DerivedMetrics, error)

	// Refresh recomputes the metrics. On failure the previous snapshot is
	// kept and the error is recorded in LastError. A result computed across
	// a Reset is dropped with ErrDashboardReset.
	Refresh(ctx context.Context) (models.DerivedMetrics, error)

	// Snapshot returns the last good metrics, if any.
	Snapshot() (models.DerivedMetrics, bool)

	// Reset drops the snapshot and the recorded error.
	Reset()

	LastError() error
	IsLoading() bool
}
