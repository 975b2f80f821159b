package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-books-api/internal/app"
	"github.com/MKhiriev/go-books-api/internal/logger"
	"github.com/MKhiriev/go-books-api/internal/utils"
)

// authenticate resolves an "Authorization: Bearer <token>" header to an
// identity and stores it in the request context.
//
// It never rejects a request: a missing or malformed header, an invalid or
// expired token, and a disabled or deleted user all leave the request
// unauthenticated. Routes that need a caller are wrapped in requireAuth.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(ErrInvalidAuthorizationHeader).Msg("ignoring authorization header")
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		identity, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			log.Info().Err(err).Msg("bearer token rejected")
			next.ServeHTTP(w, r)
			return
		}

		// Downstream handlers read the identity without re-parsing the token.
		ctx = utils.WithIdentity(ctx, identity)

		l := log.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("username", identity.Username)
		})

		next.ServeHTTP(w, r.WithContext(l.WithContext(ctx)))
	})
}

// requireAuth rejects unauthenticated requests with 401 and a Bearer
// challenge before any handler runs.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetIdentityFromContext(r.Context()); !ok {
			if r.Header.Get("Authorization") == "" {
				logger.FromRequest(r).Debug().Err(ErrEmptyAuthorizationHeader).Msg("unauthenticated request")
			}

			w.Header().Set("WWW-Authenticate", `Bearer realm="go-books-api"`)
			h.writeFailure(w, r, http.StatusUnauthorized, app.MsgUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
