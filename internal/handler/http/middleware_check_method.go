// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-books-api/internal/app"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method
// is not handled. This handler overrides that behaviour and responds with
// HTTP 404 Not Found instead, effectively hiding the existence of the route
// from callers that use an unsupported method.
//
// Usage:
//
//	router := chi.NewRouter()
//	router.MethodNotAllowed(h.CheckHTTPMethod)
func (h *Handler) CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	h.writeFailure(w, r, http.StatusNotFound, app.MsgNotFound)
}

// notFound answers unknown paths with the same envelope.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeFailure(w, r, http.StatusNotFound, app.MsgNotFound)
}
