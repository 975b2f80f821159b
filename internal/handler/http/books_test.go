package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-books-api/internal/etag"
	"github.com/MKhiriev/go-books-api/internal/service"
	"github.com/MKhiriev/go-books-api/internal/validators"
	"github.com/MKhiriev/go-books-api/models"
)

var dune = models.Book{ID: 1, Title: "Dune", Author: "Frank Herbert", Category: "sci-fi", Year: 1965, Price: 9.99}

func mustFingerprint(t *testing.T, v any) string {
	t.Helper()

	tag, err := etag.Fingerprint(v)
	require.NoError(t, err)
	return tag
}

func TestListBooks(t *testing.T) {
	t.Run("books with ETag", func(t *testing.T) {
		h, m := newMockedHandler(t)
		m.admitAll()
		m.acceptTestToken()
		m.books.EXPECT().List(gomock.Any()).Return([]models.Book{dune}, nil)

		rr := serve(t, h.Init(), http.MethodGet, "/api/v1/books", "", bearer(testToken)...)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, mustFingerprint(t, []models.Book{dune}), rr.Header().Get(etag.HeaderETag))
		assert.Equal(t, "Operation completed successfully", decodeEnvelope(t, rr).Message)
		assert.Equal(t, []models.Book{dune}, decodeData[[]models.Book](t, rr))
	})

	t.Run("empty list", func(t *testing.T) {
		h, m := newMockedHandler(t)
		m.admitAll()
		m.acceptTestToken()
		m.books.EXPECT().List(gomock.Any()).Return([]models.Book{}, nil)

		rr := serve(t, h.Init(), http.MethodGet, "/api/v1/books", "", bearer(testToken)...)

		assert.Equal(t, http.StatusOK, rr.Code)
		envelope := decodeEnvelope(t, rr)
		assert.True(t, envelope.Success)
		assert.Equal(t, "No books found", envelope.Message)
		assert.JSONEq(t, "[]", string(envelope.Data))
	})

	t.Run("If-None-Match answers 304 without body", func(t *testing.T) {
		h, m := newMockedHandler(t)
		m.admitAll()
		m.acceptTestToken()
		m.books.EXPECT().List(gomock.Any()).Return([]models.Book{dune}, nil)
		tag := mustFingerprint(t, []models.Book{dune})

		rr := serve(t, h.Init(), http.MethodGet, "/api/v1/books", "",
			"Authorization", "Bearer "+testToken,
			etag.HeaderIfNoneMatch, "W/"+tag,
			"Accept-Encoding", "gzip",
		)

		assert.Equal(t, http.StatusNotModified, rr.Code)
		assert.Equal(t, tag, rr.Header().Get(etag.HeaderETag))
		assert.Empty(t, rr.Header().Get("Content-Encoding"))
		assert.Zero(t, rr.Body.Len())
	})

	t.Run("store failure", func(t *testing.T) {
		h, m := newMockedHandler(t)
		m.admitAll()
		m.acceptTestToken()
		m.books.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection reset"))

		rr := serve(t, h.Init(), http.MethodGet, "/api/v1/books", "", bearer(testToken)...)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Empty(t, rr.Header().Get(etag.HeaderETag))
	})
}

func TestGetBook(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		headers     []string
		setup       func(m handlerMocks)
		wantStatus  int
		wantMessage string
		wantETag    bool
	}{
		{
			name: "found",
			path: "/api/v1/books/1",
			setup: func(m handlerMocks) {
				m.books.EXPECT().Get(gomock.Any(), int64(1)).Return(dune, nil)
			},
			wantStatus:  http.StatusOK,
			wantMessage: "Operation completed successfully",
			wantETag:    true,
		},
		{
			name:    "stale If-None-Match",
			path:    "/api/v1/books/1",
			headers: []string{etag.HeaderIfNoneMatch, `"stale"`},
			setup: func(m handlerMocks) {
				m.books.EXPECT().Get(gomock.Any(), int64(1)).Return(dune, nil)
			},
			wantStatus:  http.StatusOK,
			wantMessage: "Operation completed successfully",
			wantETag:    true,
		},
		{
			name: "not found carries the id",
			path: "/api/v1/books/42",
			setup: func(m handlerMocks) {
				m.books.EXPECT().Get(gomock.Any(), int64(42)).Return(models.Book{}, service.ErrBookNotFound)
			},
			wantStatus:  http.StatusNotFound,
			wantMessage: "Book with id 42 not found",
		},
		{
			name:        "non numeric id",
			path:        "/api/v1/books/abc",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid id: abc",
		},
		{
			name:        "zero id",
			path:        "/api/v1/books/0",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid id: 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)
			m.admitAll()
			m.acceptTestToken()
			if tt.setup != nil {
				tt.setup(m)
			}

			headers := append(bearer(testToken), tt.headers...)
			rr := serve(t, h.Init(), http.MethodGet, tt.path, "", headers...)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeEnvelope(t, rr).Message)
			if tt.wantETag {
				assert.Equal(t, mustFingerprint(t, dune), rr.Header().Get(etag.HeaderETag))
				assert.Equal(t, dune, decodeData[models.Book](t, rr))
			} else {
				assert.Empty(t, rr.Header().Get(etag.HeaderETag))
			}
		})
	}
}

func TestCreateBook(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, m := newMockedHandler(t)
		m.admitAll()
		m.acceptTestToken()
		m.books.EXPECT().Create(gomock.Any(), models.Book{ID: 99, Title: "Dune", Author: "Frank Herbert", Category: "sci-fi", Year: 1965, Price: 9.99}).
			Return(dune, nil)

		rr := serve(t, h.Init(), http.MethodPost, "/api/v1/books",
			`{"id":99,"title":"Dune","author":"Frank Herbert","category":"sci-fi","year":1965,"price":9.99}`,
			bearer(testToken)...)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "/api/v1/books/1", rr.Header().Get("Location"))
		assert.Equal(t, mustFingerprint(t, dune), rr.Header().Get(etag.HeaderETag))
		assert.Equal(t, "Book created successfully", decodeEnvelope(t, rr).Message)
		assert.Equal(t, dune, decodeData[models.Book](t, rr))
	})

	t.Run("validation error", func(t *testing.T) {
		h, m := newMockedHandler(t)
		m.admitAll()
		m.acceptTestToken()
		m.books.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(models.Book{}, &validators.ValidationError{Field: "title", Key: "validation.book.title.required"})

		rr := serve(t, h.Init(), http.MethodPost, "/api/v1/books", `{"title":""}`, bearer(testToken)...)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Title is required", decodeEnvelope(t, rr).Message)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		h, m := newMockedHandler(t)
		m.admitAll()
		m.acceptTestToken()

		rr := serve(t, h.Init(), http.MethodPost, "/api/v1/books", `{"title":`, bearer(testToken)...)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Invalid request body", decodeEnvelope(t, rr).Message)
	})
}

func TestUpdateBook(t *testing.T) {
	updated := dune
	updated.Price = 12.5

	tests := []struct {
		name        string
		path        string
		headers     []string
		setup       func(m handlerMocks)
		wantStatus  int
		wantMessage string
	}{
		{
			name:    "If-Match forwarded and accepted",
			path:    "/api/v1/books/1",
			headers: []string{etag.HeaderIfMatch, `"abc"`},
			setup: func(m handlerMocks) {
				m.books.EXPECT().Update(gomock.Any(), int64(1), gomock.Any(), `"abc"`).Return(updated, nil)
			},
			wantStatus:  http.StatusOK,
			wantMessage: "Book updated successfully",
		},
		{
			name: "no If-Match is last write wins",
			path: "/api/v1/books/1",
			setup: func(m handlerMocks) {
				m.books.EXPECT().Update(gomock.Any(), int64(1), gomock.Any(), "").Return(updated, nil)
			},
			wantStatus:  http.StatusOK,
			wantMessage: "Book updated successfully",
		},
		{
			name:    "stale If-Match",
			path:    "/api/v1/books/1",
			headers: []string{etag.HeaderIfMatch, `"old"`},
			setup: func(m handlerMocks) {
				m.books.EXPECT().Update(gomock.Any(), int64(1), gomock.Any(), `"old"`).Return(models.Book{}, service.ErrPreconditionFailed)
			},
			wantStatus:  http.StatusPreconditionFailed,
			wantMessage: "ETag mismatch: resource has been modified by another request",
		},
		{
			name: "absent book",
			path: "/api/v1/books/7",
			setup: func(m handlerMocks) {
				m.books.EXPECT().Update(gomock.Any(), int64(7), gomock.Any(), "").Return(models.Book{}, service.ErrBookNotFound)
			},
			wantStatus:  http.StatusNotFound,
			wantMessage: "Book with id 7 not found",
		},
		{
			name:        "invalid id",
			path:        "/api/v1/books/-3",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid id: -3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)
			m.admitAll()
			m.acceptTestToken()
			if tt.setup != nil {
				tt.setup(m)
			}

			headers := append(bearer(testToken), tt.headers...)
			rr := serve(t, h.Init(), http.MethodPut, tt.path, `{"title":"Dune","price":12.5}`, headers...)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeEnvelope(t, rr).Message)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, mustFingerprint(t, updated), rr.Header().Get(etag.HeaderETag))
			}
		})
	}
}

func TestDeleteBook(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		h, m := newMockedHandler(t)
		m.admitAll()
		m.acceptTestToken()
		m.books.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

		rr := serve(t, h.Init(), http.MethodDelete, "/api/v1/books/1", "", bearer(testToken)...)

		assert.Equal(t, http.StatusOK, rr.Code)
		envelope := decodeEnvelope(t, rr)
		assert.True(t, envelope.Success)
		assert.Equal(t, "Book deleted successfully", envelope.Message)
		assert.JSONEq(t, "null", string(envelope.Data))
	})

	t.Run("absent", func(t *testing.T) {
		h, m := newMockedHandler(t)
		m.admitAll()
		m.acceptTestToken()
		m.books.EXPECT().Delete(gomock.Any(), int64(5)).Return(service.ErrBookNotFound)

		rr := serve(t, h.Init(), http.MethodDelete, "/api/v1/books/5", "", bearer(testToken)...)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Book with id 5 not found", decodeEnvelope(t, rr).Message)
	})
}
