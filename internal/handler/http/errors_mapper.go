package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-books-api/internal/app"
	"github.com/MKhiriev/go-books-api/internal/service"
	"github.com/MKhiriev/go-books-api/internal/validators"
)

// errorResponse is the status and message key a failure is reported with.
type errorResponse struct {
	status int
	key    string
}

// errorResponses is checked in order; the first errors.Is match wins.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{service.ErrInvalidCredentials, errorResponse{http.StatusUnauthorized, app.MsgInvalidLoginPassword}},
	{service.ErrInvalidToken, errorResponse{http.StatusUnauthorized, app.MsgUnauthorized}},
	{service.ErrUserDisabled, errorResponse{http.StatusUnauthorized, app.MsgUnauthorized}},
	{service.ErrUsernameTaken, errorResponse{http.StatusConflict, app.MsgUsernameTaken}},
	{service.ErrEmailTaken, errorResponse{http.StatusConflict, app.MsgEmailTaken}},
	{service.ErrBookNotFound, errorResponse{http.StatusNotFound, app.MsgBookNotFound}},
	{service.ErrPreconditionFailed, errorResponse{http.StatusPreconditionFailed, app.MsgBookPreconditionFailed}},
	{ErrInvalidID, errorResponse{http.StatusBadRequest, app.MsgInvalidID}},
	{ErrInvalidBody, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
}

var internalError = errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}

// responseFromError classifies err. Validation failures carry their own key
// and parameters; params is used for every other key. Unknown errors are 500.
func responseFromError(err error, params ...any) (errorResponse, []any) {
	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		return errorResponse{http.StatusBadRequest, vErr.Key}, vErr.Params
	}

	for _, candidate := range errorResponses {
		if errors.Is(err, candidate.target) {
			return candidate.errorResponse, params
		}
	}

	return internalError, nil
}
