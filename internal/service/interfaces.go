package service

import (
	"context"

	"github.com/MKhiriev/go-books-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// TokenService issues and verifies stateless bearer tokens. There is no
// revocation list: a token stays valid until it expires.
type TokenService interface {
	Issue(ctx context.Context, subject string) (models.Token, error)
	// Verify returns the token subject, or ErrInvalidToken for a bad
	// signature, a foreign issuer, a missing or passed expiry, or garbage.
	Verify(ctx context.Context, token string) (string, error)
}

type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error)
	// Login does not tell an unknown user from a wrong password or a
	// disabled account; all three are ErrInvalidCredentials.
	Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error)
	// Authenticate resolves a bearer token to the enabled identity it was
	// issued for.
	Authenticate(ctx context.Context, token string) (models.Identity, error)
}

type BookService interface {
	List(ctx context.Context) ([]models.Book, error)
	Get(ctx context.Context, id int64) (models.Book, error)
	Create(ctx context.Context, book models.Book) (models.Book, error)
	// Update replaces the book with the given id. When ifMatch is not empty
	// the current representation must match it, otherwise
	// ErrPreconditionFailed is returned and nothing is written.
	Update(ctx context.Context, id int64, book models.Book, ifMatch string) (models.Book, error)
	Delete(ctx context.Context, id int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
	Health(ctx context.Context) models.HealthResponse
}
