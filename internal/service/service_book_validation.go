package service

import (
	"context"

	"github.com/MKhiriev/go-books-api/internal/validators"
	"github.com/MKhiriev/go-books-api/models"
)

// BookServiceWrapper defines middleware composition for BookService.
// Implementations wrap an existing BookService to add behavior such as
// validation.
type BookServiceWrapper interface {
	Wrap(BookService) BookService // returns a decorated BookService applying additional behavior
}

// BookValidationService rejects invalid create and update bodies before they
// reach the wrapped BookService. Reads and deletes pass straight through.
type BookValidationService struct {
	inner     BookService
	validator validators.Validator
}

func NewBookValidationService(validator validators.Validator) BookServiceWrapper {
	return &BookValidationService{
		validator: validator,
	}
}

func (v *BookValidationService) List(ctx context.Context) ([]models.Book, error) {
	return v.inner.List(ctx)
}

func (v *BookValidationService) Get(ctx context.Context, id int64) (models.Book, error) {
	return v.inner.Get(ctx, id)
}

func (v *BookValidationService) Create(ctx context.Context, book models.Book) (models.Book, error) {
	if err := v.validator.Validate(ctx, book); err != nil {
		return models.Book{}, err
	}

	return v.inner.Create(ctx, book)
}

func (v *BookValidationService) Update(ctx context.Context, id int64, book models.Book, ifMatch string) (models.Book, error) {
	if err := v.validator.Validate(ctx, book); err != nil {
		return models.Book{}, err
	}

	return v.inner.Update(ctx, id, book, ifMatch)
}

func (v *BookValidationService) Delete(ctx context.Context, id int64) error {
	return v.inner.Delete(ctx, id)
}

func (v *BookValidationService) Wrap(wrapped BookService) BookService {
	v.inner = wrapped
	return v
}
