// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux with a set of routes for tests.
// It intentionally does not use Handler.Init() to avoid service setup.
func buildRouter(h *Handler) *chi.Mux {
	router := chi.NewRouter()
	router.MethodNotAllowed(h.CheckHTTPMethod)

	router.Get("/api/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("items"))
	})
	router.Post("/api/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.Delete("/api/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter(newTestHandler())

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "GET /api/items registered, passes through",
			method:         http.MethodGet,
			path:           "/api/items",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "POST /api/items registered, passes through",
			method:         http.MethodPost,
			path:           "/api/items",
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "DELETE on parameterised route passes through",
			method:         http.MethodDelete,
			path:           "/api/items/7",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "PUT /api/items not registered, 404 instead of 405",
			method:         http.MethodPut,
			path:           "/api/items",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "GET on parameterised route not registered, 404",
			method:         http.MethodGet,
			path:           "/api/items/7",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
			if tt.expectedStatus == http.StatusNotFound {
				assert.Empty(t, rr.Header().Get("Allow"), "allowed methods must not leak")
				assert.JSONEq(t, `{"success":false,"message":"Resource not found","data":null}`, rr.Body.String())
			}
		})
	}
}
