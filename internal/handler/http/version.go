package http

import (
	"net/http"

	"github.com/MKhiriev/tool-suite/internal/utils"
)

func (h *Handler) getVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetBuildInfo(r.Context())
	_, _ = utils.WriteJSON(w, buildInfo.VersionInfo(), http.StatusOK)
}
