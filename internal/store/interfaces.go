package store

import (
	"context"

	"github.com/MKhiriev/go-books-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BookRepository is the persistence contract for the books resource.
// Absence is reported with [ErrBookNotFound].
type BookRepository interface {
	List(ctx context.Context) ([]models.Book, error)
	Get(ctx context.Context, id int64) (models.Book, error)
	Create(ctx context.Context, book models.Book) (models.Book, error)
	// Update replaces every column of the book identified by book.ID and
	// returns the stored row.
	Update(ctx context.Context, book models.Book) (models.Book, error)
	Delete(ctx context.Context, id int64) error
}

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// Create stores user with an already hashed password. A unique violation
	// is reported as [ErrUsernameTaken] or [ErrEmailTaken].
	Create(ctx context.Context, user models.User) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// Pinger reports whether the underlying database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}
