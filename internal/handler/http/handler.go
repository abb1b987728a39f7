package http

import (
	"github.com/MKhiriev/guest-nama/internal/logger"
	"github.com/MKhiriev/guest-nama/internal/service"
)

type Handler struct {
	services *service.Services

	// hashKey enables HashSHA256 verification of request bodies when set.
	hashKey string

	logger *logger.Logger
}

func NewHandler(services *service.Services, hashKey string, logger *logger.Logger) *Handler {
	logger.Info().Bool("body_hashing", hashKey != "").Msg("http handler created")
	return &Handler{
		services: services,
		hashKey:  hashKey,
		logger:   logger,
	}
}
