package http

import (
	"net/http"
)

// getServerVersion answers with the bare version string.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(h.services.AppInfoService.GetAppVersion(r.Context())))
}

func (h *Handler) getBuildInfo(w http.ResponseWriter, r *http.Request) {
	writeData(w, h.services.AppInfoService.GetBuildInfo(r.Context()), http.StatusOK)
}
