package http

import (
	"net/http"

	"github.com/MKhiriev/go-books-api/internal/utils"
)

// withLocale negotiates the response locale from Accept-Language and
// stores it in the request context.
func (h *Handler) withLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale := h.translator.Negotiate(r.Header.Get("Accept-Language"))

		w.Header().Set("Content-Language", locale)
		w.Header().Add("Vary", "Accept-Language")

		next.ServeHTTP(w, r.WithContext(utils.WithLocale(r.Context(), locale)))
	})
}
