package http

import (
	"net/http"

	"github.com/MKhiriev/tool-suite/internal/utils"
	"github.com/MKhiriev/tool-suite/models"
)

func (h *Handler) getAPIConfig(w http.ResponseWriter, r *http.Request) {
	report := h.services.DiagnosticsService.CheckAPIConfig(r.Context())
	_, _ = utils.WriteJSON(w, report, http.StatusOK)
}

// pingAPI answers 200 when the backend is reachable and 503 otherwise.
func (h *Handler) pingAPI(w http.ResponseWriter, r *http.Request) {
	report := h.services.DiagnosticsService.CheckAPIConfig(r.Context())
	reachable := h.services.DiagnosticsService.TestAPIConnection(r.Context())

	status := http.StatusOK
	if !reachable {
		status = http.StatusServiceUnavailable
	}

	_, _ = utils.WriteJSON(w, models.Reachability{
		Reachable: reachable,
		BaseURL:   report.BaseURL,
	}, status)
}
