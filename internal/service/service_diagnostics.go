package service

import (
	"context"

	"github.com/MKhiriev/tool-suite/internal/config"
	"github.com/MKhiriev/tool-suite/internal/diagnostics"
	"github.com/MKhiriev/tool-suite/internal/logger"
)

type diagnosticsService struct {
	cfg config.APIConfig

	logger *logger.Logger
}

func NewDiagnosticsService(cfg config.APIConfig, logger *logger.Logger) DiagnosticsService {
	return &diagnosticsService{
		cfg:    cfg,
		logger: logger,
	}
}

func (s *diagnosticsService) CheckAPIConfig(ctx context.Context) diagnostics.Report {
	return diagnostics.CheckAPIConfig(s.cfg, s.loggerFor(ctx))
}

func (s *diagnosticsService) TestAPIConnection(ctx context.Context) bool {
	return diagnostics.TestAPIConnection(ctx, s.cfg, s.loggerFor(ctx))
}

// loggerFor prefers the request-scoped logger so probe logs carry the
// trace id.
func (s *diagnosticsService) loggerFor(ctx context.Context) *logger.Logger {
	return logger.FromContextOr(ctx, s.logger)
}
