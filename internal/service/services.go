package service

import (
	"fmt"

	"github.com/MKhiriev/guest-nama/internal/config"
	"github.com/MKhiriev/guest-nama/internal/logger"
	"github.com/MKhiriev/guest-nama/internal/store"
	"github.com/MKhiriev/guest-nama/internal/utils"
	"github.com/MKhiriev/guest-nama/models"
)

// Services groups the storage server's business services.
type Services struct {
	AppInfoService AppInfoService
	UserService    UserService
	RecordService  RecordService
}

// NewServices wires the server services over storages. The record service
// is wrapped with input validation.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	ids := utils.NewUUIDGenerator()

	return &Services{
		AppInfoService: appInfo,
		UserService:    NewUserService(storages.UserRepository, ids, logger),
		RecordService:  NewRecordValidationService().Wrap(NewRecordService(storages, ids, logger)),
	}, nil
}
