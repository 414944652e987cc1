package http

import (
	"net/http"

	"github.com/rouaze/fwkey-service/internal/logger"
	"github.com/rouaze/fwkey-service/internal/utils"
)

// getBuildInfo reports the version, build date and commit of the running
// binary.
func (h *Handler) getBuildInfo(w http.ResponseWriter, r *http.Request) {
	info := h.services.BuildInfoService.GetBuildInfo(r.Context())

	if _, err := utils.WriteJSON(w, info, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getBuildInfo").Msg("error writing build info")
	}
}

// healthz reports liveness only; the key store is not contacted.
func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("ok"))
}
