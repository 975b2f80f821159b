package crypto

import "errors"

var (
	// ErrInvalidHash is returned by Verify when the stored hash is not a
	// well-formed argon2id PHC string.
	ErrInvalidHash = errors.New("invalid password hash")
	// ErrUnsupportedHash is returned when the stored hash was produced by a
	// different algorithm or argon2 version.
	ErrUnsupportedHash = errors.New("unsupported password hash")
)
