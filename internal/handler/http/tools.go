package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/tool-suite/internal/utils"
	"github.com/MKhiriev/tool-suite/models"
)

func (h *Handler) toTraditional(w http.ResponseWriter, r *http.Request) {
	var req models.TextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	body, err := h.services.TextService.ToTraditional(r.Context(), req.Content)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteRawJSON(w, body, http.StatusOK)
}
