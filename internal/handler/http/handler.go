package http

import (
	"net/http"

	"github.com/MKhiriev/tool-suite/internal/config"
	"github.com/MKhiriev/tool-suite/internal/logger"
	"github.com/MKhiriev/tool-suite/internal/router"
	"github.com/MKhiriev/tool-suite/internal/service"
	"github.com/MKhiriev/tool-suite/internal/views"
)

type Handler struct {
	services *service.Services
	routes   *router.Table
	renderer *views.Renderer

	devProxy http.Handler
	proxyCfg config.Proxy

	logger *logger.Logger
}

func NewHandler(services *service.Services, routes *router.Table, renderer *views.Renderer, logger *logger.Logger) *Handler {
	logger.Info().Int("routes", routes.Len()).Msg("http handler created")
	return &Handler{
		services: services,
		routes:   routes,
		renderer: renderer,
		logger:   logger,
	}
}

// WithDevProxy mounts proxy under cfg.Prefix when Init is called.
func (h *Handler) WithDevProxy(cfg config.Proxy, proxy http.Handler) *Handler {
	h.devProxy = proxy
	h.proxyCfg = cfg
	return h
}

func (h *Handler) requestLogger(r *http.Request) *logger.Logger {
	return logger.FromContextOr(r.Context(), h.logger)
}
