package store

import "github.com/MKhiriev/go-books-api/internal/logger"

// Storages groups the repositories built over one database connection.
type Storages struct {
	UserRepository UserRepository
	BookRepository BookRepository
	Pinger         Pinger
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
		BookRepository: NewBookRepository(db, log),
		Pinger:         db,
	}
}
