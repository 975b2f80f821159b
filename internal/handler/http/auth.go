package http

import (
	"net/http"

	"github.com/MKhiriev/go-books-api/internal/app"
	"github.com/MKhiriev/go-books-api/internal/logger"
	"github.com/MKhiriev/go-books-api/internal/utils"
	"github.com/MKhiriev/go-books-api/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", resp.Type+" "+resp.Token)
	h.writeSuccess(w, r, http.StatusCreated, app.MsgRegistered, resp)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("username", resp.Username).Msg("user successfully logged in")

	w.Header().Set("Authorization", resp.Type+" "+resp.Token)
	h.writeSuccess(w, r, http.StatusOK, app.MsgLoggedIn, resp)
}

// me returns the identity resolved by the authentication middleware.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		h.writeFailure(w, r, http.StatusUnauthorized, app.MsgUnauthorized)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgSuccess, identity)
}
