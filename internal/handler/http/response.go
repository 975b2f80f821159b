package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-books-api/internal/logger"
	"github.com/MKhiriev/go-books-api/internal/utils"
	"github.com/MKhiriev/go-books-api/models"
)

const maxBodyBytes = 1 << 20

// translate resolves key in the locale negotiated for r.
func (h *Handler) translate(r *http.Request, key string, params ...any) string {
	return h.translator.Translate(utils.GetLocaleFromContext(r.Context()), key, params...)
}

func (h *Handler) writeSuccess(w http.ResponseWriter, r *http.Request, status int, key string, data any, params ...any) {
	if _, err := utils.WriteJSON(w, models.Success(h.translate(r, key, params...), data), status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func (h *Handler) writeFailure(w http.ResponseWriter, r *http.Request, status int, key string, params ...any) {
	if _, err := utils.WriteJSON(w, models.Failure(h.translate(r, key, params...)), status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// writeError maps err to a status and message. Internal failures are logged
// with their cause; the client only sees the generic message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, params ...any) {
	resp, params := responseFromError(err, params...)
	if resp.status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("internal error")
	} else {
		logger.FromRequest(r).Debug().Err(err).Int("status", resp.status).Msg("request failed")
	}

	h.writeFailure(w, r, resp.status, resp.key, params...)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}

	return nil
}

// pathID parses the {id} URL parameter as a positive integer.
func pathID(r *http.Request) (int64, string, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, raw, ErrInvalidID
	}

	return id, raw, nil
}
