// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the books API.
//
// The primary abstraction is [BooksClient], which hides the REST transport
// from the bookctl commands. Non-2xx responses are mapped to the sentinel
// values in errors.go by mapHTTPError so callers can use [errors.Is]
// (e.g. [ErrPreconditionFailed] for 412, [ErrTooManyRequests] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-books-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/books_client_mock.go -package=mock

// Result is a decoded success envelope together with the cache validator the
// server attached to it.
type Result[T any] struct {
	// Message is the localized envelope message.
	Message string

	// Data is the envelope payload. It is the zero value when NotModified is
	// set.
	Data T

	// ETag is the strong validator returned by the server, if any.
	ETag string

	// NotModified reports a 304 answer to a conditional GET.
	NotModified bool
}

// BooksClient talks to the books API on behalf of a single user.
type BooksClient interface {
	// SetToken stores the bearer token attached to every subsequent request.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when none is set.
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, req models.RegisterRequest) (Result[models.AuthResponse], error)

	// Login exchanges credentials for a token and stores it.
	Login(ctx context.Context, req models.LoginRequest) (Result[models.AuthResponse], error)

	// Me returns the identity bound to the stored token.
	Me(ctx context.Context) (Result[models.Identity], error)

	// ListBooks fetches the whole collection. A non-empty ifNoneMatch makes
	// the request conditional.
	ListBooks(ctx context.Context, ifNoneMatch string) (Result[[]models.Book], error)

	// GetBook fetches one book. A non-empty ifNoneMatch makes the request
	// conditional.
	GetBook(ctx context.Context, id int64, ifNoneMatch string) (Result[models.Book], error)

	// CreateBook stores a new book and returns it with its assigned ID.
	CreateBook(ctx context.Context, book models.Book) (Result[models.Book], error)

	// UpdateBook replaces the book with the given ID. A non-empty ifMatch is
	// sent as If-Match; a stale value yields [ErrPreconditionFailed].
	UpdateBook(ctx context.Context, id int64, book models.Book, ifMatch string) (Result[models.Book], error)

	// DeleteBook removes the book with the given ID.
	DeleteBook(ctx context.Context, id int64) (Result[any], error)

	// Version reports the server build information.
	Version(ctx context.Context) (Result[models.VersionResponse], error)

	// Health reports server and storage status. A DOWN server answers with
	// [ErrServiceUnavailable].
	Health(ctx context.Context) (Result[models.HealthResponse], error)
}
