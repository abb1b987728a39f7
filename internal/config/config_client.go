package config

import (
	"fmt"
	"time"
)

const (
	// DefaultRevalidationInterval is the session re-check period used when
	// none is configured.
	DefaultRevalidationInterval = 5 * time.Minute
	// DefaultRefreshInterval is the watch command's recompute period used
	// when none is configured.
	DefaultRefreshInterval = 30 * time.Second
	// DefaultAdapterTimeout bounds outbound requests when none is configured.
	DefaultAdapterTimeout = 10 * time.Second
	// MemoryDSN selects the in-memory session store.
	MemoryDSN = ":memory:"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey is the HMAC key used by the client to sign request bodies.
	HashKey string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the storage server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	RevalidationInterval time.Duration
	RefreshInterval      time.Duration
	FetchTimeout         time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the server address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// Verbose enables debug logging.
	Verbose bool
	// Args are the positional arguments (command and its flags).
	Args []string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config the same way [GetStructuredConfig] does, maps only
// the fields relevant to the client runtime, fills defaults and validates the
// resulting [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Client.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			RevalidationInterval: cfg.Workers.RevalidationInterval,
			RefreshInterval:      cfg.Workers.RefreshInterval,
			FetchTimeout:         cfg.Workers.FetchTimeout,
		},
		Verbose: cfg.Verbose,
		Args:    cfg.Args,
	}

	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultAdapterTimeout
	}
	if clientCfg.Workers.RevalidationInterval == 0 {
		clientCfg.Workers.RevalidationInterval = DefaultRevalidationInterval
	}
	if clientCfg.Workers.RefreshInterval == 0 {
		clientCfg.Workers.RefreshInterval = DefaultRefreshInterval
	}
	if clientCfg.Storage.DB.DSN == "" {
		clientCfg.Storage.DB.DSN = MemoryDSN
	}

	return clientCfg
}
