package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("token is expired or invalid")
	ErrUserDisabled       = errors.New("user is disabled")
	ErrTokenCreation      = errors.New("token creation failed")

	ErrUsernameTaken = errors.New("username is already taken")
	ErrEmailTaken    = errors.New("email is already registered")

	ErrBookNotFound       = errors.New("book not found")
	ErrPreconditionFailed = errors.New("book representation does not match If-Match")
	ErrFingerprint        = errors.New("book fingerprint failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
