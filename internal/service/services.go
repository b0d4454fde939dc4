package service

import (
	"github.com/MKhiriev/tool-suite/internal/adapter"
	"github.com/MKhiriev/tool-suite/internal/config"
	"github.com/MKhiriev/tool-suite/internal/logger"
	"github.com/MKhiriev/tool-suite/models"
)

type Services struct {
	TextService        TextService
	DiagnosticsService DiagnosticsService
	AppInfoService     AppInfoService
}

func NewServices(client adapter.APIClient, cfg config.APIConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	textService, err := NewTextService(client, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		TextService:        NewTextValidationService().Wrap(textService),
		DiagnosticsService: NewDiagnosticsService(cfg, logger),
		AppInfoService:     NewAppInfoService(buildInfo),
	}, nil
}
