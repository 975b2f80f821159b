package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-books-api/internal/app"
	"github.com/MKhiriev/go-books-api/models"
)

const (
	FieldTitle = "title"
	FieldYear  = "year"
	FieldPrice = "price"
)

const maxTitleLength = 255

// BookValidator checks book create and update bodies.
type BookValidator struct {
}

func NewBookValidator() Validator {
	return &BookValidator{}
}

func (v *BookValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Book:
		return v.validateBook(ctx, value, fields...)
	case *models.Book:
		return v.validateBook(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *BookValidator) validateBook(_ context.Context, book models.Book, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldYear, FieldPrice}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(book.Title) == "" {
				return newValidationError(FieldTitle, app.MsgBookTitleRequired)
			}
			if utf8.RuneCountInString(book.Title) > maxTitleLength {
				return newValidationError(FieldTitle, app.MsgBookTitleTooLong, maxTitleLength)
			}
		case FieldYear:
			if book.Year < 0 {
				return newValidationError(FieldYear, app.MsgBookYearNegative)
			}
		case FieldPrice:
			if book.Price < 0 {
				return newValidationError(FieldPrice, app.MsgBookPriceNegative)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
