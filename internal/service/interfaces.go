package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/tool-suite/internal/diagnostics"
	"github.com/MKhiriev/tool-suite/models"
)

//go:generate mockgen -source=interfaces.go -destination=../handler/http/service_mock_test.go -package=http

// TextService calls the text conversion endpoints of the tools backend.
type TextService interface {
	// ToTraditional converts simplified Chinese content to traditional
	// Chinese. The backend JSON response is returned unchanged.
	ToTraditional(ctx context.Context, content string) (json.RawMessage, error)
}

// TextServiceWrapper defines middleware composition for TextService.
// Implementations wrap an existing TextService to add behavior such as
// validation.
type TextServiceWrapper interface {
	Wrap(TextService) TextService
}

// DiagnosticsService exposes the configuration report and the backend
// liveness probe.
type DiagnosticsService interface {
	CheckAPIConfig(ctx context.Context) diagnostics.Report
	TestAPIConnection(ctx context.Context) bool
}

type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
