package http

import (
	"net/http"

	"github.com/MKhiriev/go-books-api/internal/app"
	"github.com/MKhiriev/go-books-api/internal/service"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	h.writeSuccess(w, r, http.StatusOK, app.MsgSuccess, serverVersion)
}

// health answers 503 while the store is unreachable.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status := h.services.AppInfoService.Health(r.Context())

	code := http.StatusOK
	if status.Status != service.StatusUp {
		code = http.StatusServiceUnavailable
	}

	h.writeSuccess(w, r, code, app.MsgSuccess, status)
}
