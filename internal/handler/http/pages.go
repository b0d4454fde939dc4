package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/tool-suite/internal/app"
	"github.com/MKhiriev/tool-suite/internal/router"
	"github.com/MKhiriev/tool-suite/internal/utils"
	"github.com/MKhiriev/tool-suite/internal/views"
)

func (h *Handler) renderPage(route router.Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := h.renderer.Render(&buf, route.View, h.navigation(route)); err != nil {
			h.writeError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = buf.WriteTo(w)
	}
}

func (h *Handler) navigation(current router.Route) []views.NavLink {
	routes := h.routes.Routes()
	nav := make([]views.NavLink, 0, len(routes))
	for _, route := range routes {
		page, ok := views.Lookup(route.View)
		if !ok {
			continue
		}
		nav = append(nav, views.NavLink{
			Path:   route.Path,
			Title:  page.Title,
			Active: route.Path == current.Path,
		})
	}
	return nav
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusNotFound, "not_found", app.MsgNoRoute+" "+r.URL.Path)
}
