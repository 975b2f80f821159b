// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, content hashing,
// HTTP response writing, client IP extraction, HTTP client initialization
// and JWT token generation and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-books-api/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// LocaleCtxKey is the key used to store the negotiated locale tag (for
// example "fr" or "en-US") in the context.
var LocaleCtxKey = contextKey("locale")

// WithLocale returns a copy of ctx carrying the negotiated locale tag.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, LocaleCtxKey, locale)
}

// GetLocaleFromContext retrieves the negotiated locale tag from the context.
// An empty string means no locale was negotiated.
func GetLocaleFromContext(ctx context.Context) string {
	locale, _ := ctx.Value(LocaleCtxKey).(string)
	return locale
}

// IdentityCtxKey is the key under which the authentication middleware stores
// the resolved [models.Identity] of the caller.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity. Set by the
// authentication middleware after a bearer token has been verified.
//
// Example of writing a value to the context:
//
//	ctx := utils.WithIdentity(ctx, models.NewIdentity(user))
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext returns the identity stored by [WithIdentity].
// ok is false for unauthenticated requests.
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok && identity.Username != ""
}
