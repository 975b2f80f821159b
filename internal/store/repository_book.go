// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-books-api/internal/logger"
	"github.com/MKhiriev/go-books-api/models"
)

// bookRepository is the SQL implementation of [BookRepository] for both
// supported drivers.
type bookRepository struct {
	*DB
	logger *logger.Logger
}

func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (models.Book, error) {
	var book models.Book
	err := row.Scan(&book.ID, &book.Title, &book.Author, &book.Category, &book.Year, &book.Price)
	return book, err
}

// List returns every book ordered by id. An empty table yields an empty,
// non-nil slice.
func (r *bookRepository) List(ctx context.Context) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBooksQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "bookRepository.List").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var books []models.Book
	err = r.withRetry(ctx, func() error {
		rows, queryErr := r.DB.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()

		books = make([]models.Book, 0, 16)
		for rows.Next() {
			book, scanErr := scanBook(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
			}
			books = append(books, book)
		}

		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "bookRepository.List").Msg("failed to list books")
		if errors.Is(err, ErrScanningRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return books, nil
}

func (r *bookRepository) Get(ctx context.Context, id int64) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetBookQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "bookRepository.Get").Msg("failed to create query")
		return models.Book{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var book models.Book
	err = r.withRetry(ctx, func() error {
		var scanErr error
		book, scanErr = scanBook(r.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Book{}, ErrBookNotFound
	case err != nil:
		log.Err(err).Str("func", "bookRepository.Get").Int64("id", id).Msg("failed to get book")
		return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return book, nil
}

func (r *bookRepository) Create(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertBookQuery(r.builder, book)
	if err != nil {
		log.Err(err).Str("func", "bookRepository.Create").Msg("failed to create query")
		return models.Book{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanBook(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "bookRepository.Create").Msg("failed to insert book")
		return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *bookRepository) Update(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateBookQuery(r.builder, book)
	if err != nil {
		log.Err(err).Str("func", "bookRepository.Update").Msg("failed to create query")
		return models.Book{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanBook(r.DB.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Book{}, ErrBookNotFound
	case err != nil:
		log.Err(err).Str("func", "bookRepository.Update").Int64("id", book.ID).Msg("failed to update book")
		return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

func (r *bookRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteBookQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "bookRepository.Delete").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "bookRepository.Delete").Int64("id", id).Msg("failed to delete book")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBookNotFound
	}

	return nil
}
