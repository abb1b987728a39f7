package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/guest-nama/internal/config"
	"github.com/MKhiriev/guest-nama/internal/handler"
	"github.com/MKhiriev/guest-nama/internal/logger"
	"github.com/MKhiriev/guest-nama/internal/server"
	"github.com/MKhiriev/guest-nama/internal/service"
	"github.com/MKhiriev/guest-nama/internal/store"
	"github.com/MKhiriev/guest-nama/internal/utils"
	"github.com/MKhiriev/guest-nama/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("guestnama-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Bool("body_hashing", cfg.App.HashKey != "").
		Msg("received configs")

	if cfg.App.HashKey != "" {
		utils.InitHasherPool(cfg.App.HashKey)
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
