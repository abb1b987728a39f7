package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/guest-nama/internal/adapter"
	"github.com/MKhiriev/guest-nama/internal/client"
	"github.com/MKhiriev/guest-nama/internal/config"
	"github.com/MKhiriev/guest-nama/internal/logger"
	"github.com/MKhiriev/guest-nama/internal/service"
	"github.com/MKhiriev/guest-nama/internal/store"
	"github.com/MKhiriev/guest-nama/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("guestnama-client", os.Stderr, cfg.Verbose)
	log.Debug().Msg(buildInfo.String())

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("client run error")
		os.Exit(1)
	}
}

func run(cfg *config.ClientConfig, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storageAdapter, err := adapter.NewHTTPStorageAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		return fmt.Errorf("create storage adapter: %w", err)
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer localStorage.Close()

	services := service.NewClientServices(localStorage, storageAdapter, cfg.Workers, log)

	app, err := client.NewApp(services, cfg, os.Stdout, log)
	if err != nil {
		return err
	}

	return app.Run(ctx)
}
