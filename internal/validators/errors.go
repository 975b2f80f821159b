package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation is the sentinel wrapped by every [ValidationError].
	ErrValidation = errors.New("validation failed")
)

// ValidationError describes one rejected field. Key is a message catalog
// key and Params its placeholder values, so the transport layer can render
// the failure in the caller's locale.
type ValidationError struct {
	Field  string
	Key    string
	Params []any
}

func newValidationError(field, key string, params ...any) *ValidationError {
	return &ValidationError{Field: field, Key: key, Params: params}
}

func (e *ValidationError) Error() string {
	if len(e.Params) == 0 {
		return fmt.Sprintf("%s: %s", e.Field, e.Key)
	}
	return fmt.Sprintf("%s: %s %v", e.Field, e.Key, e.Params)
}

// Unwrap lets errors.Is match [ErrValidation].
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
