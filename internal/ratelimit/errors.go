package ratelimit

import "errors"

var (
	// ErrEmptyKey is returned by Admit when the client could not be identified.
	ErrEmptyKey = errors.New("rate limit key is empty")
	// ErrInvalidConfig is returned by New for a bucket that could never admit
	// or refill.
	ErrInvalidConfig = errors.New("invalid rate limit configuration")
)
