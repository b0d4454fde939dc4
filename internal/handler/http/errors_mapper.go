package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/tool-suite/internal/adapter"
	"github.com/MKhiriev/tool-suite/internal/service"
	"github.com/MKhiriev/tool-suite/internal/utils"
	"github.com/MKhiriev/tool-suite/internal/views"
)

var errorStatusMap = map[error]int{
	ErrInvalidRequestBody:    http.StatusBadRequest,
	service.ErrEmptyContent:  http.StatusBadRequest,
	service.ErrNoAPIClient:   http.StatusInternalServerError,
	views.ErrUnknownView:     http.StatusInternalServerError,
	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

// statusFromError maps local errors through errorStatusMap. Every failure of
// the tools backend is reported as 502 Bad Gateway.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}

	var httpErr *adapter.HTTPError
	if errors.As(err, &httpErr) || adapter.Classify(err) == adapter.KindNetwork {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	kind := adapter.Classify(err).String()

	h.requestLogger(r).Error().Err(err).
		Int("status", status).
		Str("kind", kind).
		Msg("request failed")

	utils.WriteError(w, status, kind, err.Error())
}
