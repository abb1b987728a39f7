package service

import (
	"github.com/MKhiriev/guest-nama/internal/adapter"
	"github.com/MKhiriev/guest-nama/internal/config"
	"github.com/MKhiriev/guest-nama/internal/crypto"
	"github.com/MKhiriev/guest-nama/internal/logger"
	"github.com/MKhiriev/guest-nama/internal/store"
	"github.com/MKhiriev/guest-nama/internal/utils"
)

type ClientServices struct {
	SessionManager    SessionManager
	MetricsAggregator MetricsAggregator
	Dashboard         Dashboard
}

// NewClientServices wires the client services. A storage server rejection
// of the session resets the dashboard before Invalidated fires.
func NewClientServices(localStore *store.ClientStorages, storageAdapter adapter.StorageAdapter, workers config.ClientWorkers, logger *logger.Logger) *ClientServices {
	services := &ClientServices{}

	services.SessionManager = NewSessionManager(
		storageAdapter,
		localStore.SessionStore,
		crypto.NewSHA256Hasher(),
		utils.NewUUIDGenerator(),
		workers.RevalidationInterval,
		logger,
		WithInvalidateHook(func() { services.Dashboard.Reset() }),
	)
	services.MetricsAggregator = NewMetricsAggregator(storageAdapter, workers.FetchTimeout, logger)
	services.Dashboard = NewDashboard(services.SessionManager, services.MetricsAggregator, logger)

	return services
}
