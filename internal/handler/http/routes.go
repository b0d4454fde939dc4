package http

import (
	"github.com/MKhiriev/tool-suite/internal/proxy"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// pages of the route table
	router.Group(func(r chi.Router) {
		for _, route := range h.routes.Routes() {
			r.Get(route.Path, h.renderPage(route))
			if route.Path != "/" {
				r.Get(route.Path+"/", h.renderPage(route))
			}
		}
	})

	router.Post("/tools/to-traditional", h.toTraditional)

	router.Route("/debug", func(r chi.Router) {
		r.Get("/api-config", h.getAPIConfig)
		r.Get("/api-ping", h.pingAPI)
		r.Get("/version", h.getVersion)
	})

	if h.devProxy != nil {
		proxy.Mount(router, h.proxyCfg, h.devProxy)
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
