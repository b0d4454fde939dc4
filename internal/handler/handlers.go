package handler

import (
	"fmt"

	"github.com/MKhiriev/tool-suite/internal/config"
	"github.com/MKhiriev/tool-suite/internal/handler/http"
	"github.com/MKhiriev/tool-suite/internal/logger"
	"github.com/MKhiriev/tool-suite/internal/proxy"
	"github.com/MKhiriev/tool-suite/internal/router"
	"github.com/MKhiriev/tool-suite/internal/service"
	"github.com/MKhiriev/tool-suite/internal/views"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the HTTP handler of the shell from the default route
// table. In development mode the dev proxy is attached as well.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Str("environment", cfg.App.Environment()).Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServices
	}

	renderer, err := views.NewRenderer(cfg.App.Title, cfg.App.Environment())
	if err != nil {
		return nil, fmt.Errorf("create view renderer: %w", err)
	}

	h := http.NewHandler(services, router.DefaultTable(), renderer, logger)

	if cfg.App.IsDevelopment() {
		devProxy, err := proxy.NewDevProxy(cfg.Proxy, logger)
		if err != nil {
			return nil, fmt.Errorf("create dev proxy: %w", err)
		}
		h.WithDevProxy(cfg.Proxy, devProxy)
		logger.Info().Str("prefix", cfg.Proxy.Prefix).Str("target", cfg.Proxy.Target).Msg("dev proxy enabled")
	}

	return &Handlers{HTTP: h}, nil
}
