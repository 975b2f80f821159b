package http

import (
	"math"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-books-api/internal/app"
	"github.com/MKhiriev/go-books-api/internal/utils"
	"github.com/MKhiriev/go-books-api/models"
)

const (
	headerRateLimitRemaining = "X-Rate-Limit-Remaining"
	headerRetryAfter         = "Retry-After"
)

// withRateLimit admits each request against the bucket of its client IP
// before anything else runs. The client IP comes from X-Forwarded-For when
// present, which a client can spoof unless a trusted proxy overwrites it.
//
// Rejections carry a fixed, untranslated envelope because the locale has not
// been negotiated yet.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP := utils.ClientIP(r)

		decision, err := h.limiter.Admit(clientIP)
		if err != nil {
			h.logger.Err(err).Str("client_ip", clientIP).Msg("rate limiter failed")
			h.writeFailure(w, r, http.StatusInternalServerError, app.MsgInternalServerError)
			return
		}

		if !decision.Allowed {
			h.logger.Warn().
				Str("client_ip", clientIP).
				Str("uri", r.RequestURI).
				Dur("retry_after", decision.RetryAfter).
				Msg("rate limit exceeded")

			w.Header().Set(headerRateLimitRemaining, "0")
			w.Header().Set(headerRetryAfter, strconv.Itoa(retryAfterSeconds(decision.RetryAfter.Seconds())))
			utils.WriteJSON(w, models.Failure(app.MsgRateLimitExceeded), http.StatusTooManyRequests)
			return
		}

		w.Header().Set(headerRateLimitRemaining, strconv.FormatInt(decision.Remaining, 10))
		next.ServeHTTP(w, r)
	})
}

// retryAfterSeconds rounds up so clients never retry early.
func retryAfterSeconds(seconds float64) int {
	return max(1, int(math.Ceil(seconds)))
}
