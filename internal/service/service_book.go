package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-books-api/internal/etag"
	"github.com/MKhiriev/go-books-api/internal/logger"
	"github.com/MKhiriev/go-books-api/internal/store"
	"github.com/MKhiriev/go-books-api/models"
)

type bookService struct {
	books  store.BookRepository
	logger *logger.Logger
}

func NewBookService(books store.BookRepository, logger *logger.Logger) BookService {
	return &bookService{
		books:  books,
		logger: logger,
	}
}

func (s *bookService) List(ctx context.Context) ([]models.Book, error) {
	return s.books.List(ctx)
}

func (s *bookService) Get(ctx context.Context, id int64) (models.Book, error) {
	book, err := s.books.Get(ctx, id)
	if errors.Is(err, store.ErrBookNotFound) {
		return models.Book{}, ErrBookNotFound
	}

	return book, err
}

func (s *bookService) Create(ctx context.Context, book models.Book) (models.Book, error) {
	book.ID = 0

	created, err := s.books.Create(ctx, book)
	if err != nil {
		return models.Book{}, err
	}

	logger.FromContext(ctx).Info().Int64("id", created.ID).Msg("book created")
	return created, nil
}

// Update is last-write-wins unless the caller opts in with ifMatch. The
// If-Match check and the write are not atomic; two conditional writers
// racing on the same representation can both pass.
func (s *bookService) Update(ctx context.Context, id int64, book models.Book, ifMatch string) (models.Book, error) {
	log := logger.FromContext(ctx)

	if ifMatch != "" {
		current, err := s.Get(ctx, id)
		if err != nil {
			return models.Book{}, err
		}

		tag, err := etag.Fingerprint(current)
		if err != nil {
			return models.Book{}, fmt.Errorf("%w: %w", ErrFingerprint, err)
		}
		if !etag.Match(ifMatch, tag) {
			log.Info().Int64("id", id).Str("if_match", ifMatch).Str("etag", tag).Msg("stale If-Match")
			return models.Book{}, ErrPreconditionFailed
		}
	}

	book.ID = id
	updated, err := s.books.Update(ctx, book)
	if errors.Is(err, store.ErrBookNotFound) {
		return models.Book{}, ErrBookNotFound
	}
	if err != nil {
		return models.Book{}, err
	}

	log.Info().Int64("id", id).Msg("book updated")
	return updated, nil
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	err := s.books.Delete(ctx, id)
	if errors.Is(err, store.ErrBookNotFound) {
		return ErrBookNotFound
	}
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Int64("id", id).Msg("book deleted")
	return nil
}
