package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-books-api/internal/etag"
	"github.com/MKhiriev/go-books-api/internal/service"
	"github.com/MKhiriev/go-books-api/models"
)

func TestBooksV2_NoEntityTags(t *testing.T) {
	h, m := newMockedHandler(t)
	m.admitAll()
	m.acceptTestToken()
	router := h.Init()

	tag := mustFingerprint(t, dune)

	m.books.EXPECT().List(gomock.Any()).Return([]models.Book{dune}, nil)
	rr := serve(t, router, http.MethodGet, "/api/v2/books", "", bearer(testToken)...)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get(etag.HeaderETag))

	m.books.EXPECT().Get(gomock.Any(), int64(1)).Return(dune, nil)
	rr = serve(t, router, http.MethodGet, "/api/v2/books/1", "",
		"Authorization", "Bearer "+testToken,
		etag.HeaderIfNoneMatch, tag,
	)
	assert.Equal(t, http.StatusOK, rr.Code, "v2 ignores If-None-Match")
	assert.Equal(t, dune, decodeData[models.Book](t, rr))

	m.books.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dune, nil)
	rr = serve(t, router, http.MethodPost, "/api/v2/books", `{"title":"Dune"}`, bearer(testToken)...)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/api/v2/books/1", rr.Header().Get("Location"))
	assert.Empty(t, rr.Header().Get(etag.HeaderETag))

	m.books.EXPECT().Update(gomock.Any(), int64(1), gomock.Any(), "").Return(dune, nil)
	rr = serve(t, router, http.MethodPut, "/api/v2/books/1", `{"title":"Dune"}`,
		"Authorization", "Bearer "+testToken,
		etag.HeaderIfMatch, `"anything"`,
	)
	assert.Equal(t, http.StatusOK, rr.Code, "v2 never forwards If-Match")

	m.books.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
	rr = serve(t, router, http.MethodDelete, "/api/v2/books/1", "", bearer(testToken)...)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Book deleted successfully", decodeEnvelope(t, rr).Message)
}

func TestBooksV2_Errors(t *testing.T) {
	h, m := newMockedHandler(t)
	m.admitAll()
	m.acceptTestToken()
	router := h.Init()

	m.books.EXPECT().Get(gomock.Any(), int64(3)).Return(models.Book{}, service.ErrBookNotFound)
	rr := serve(t, router, http.MethodGet, "/api/v2/books/3", "", bearer(testToken)...)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Book with id 3 not found", decodeEnvelope(t, rr).Message)

	rr = serve(t, router, http.MethodDelete, "/api/v2/books/x", "", bearer(testToken)...)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	m.books.EXPECT().List(gomock.Any()).Return([]models.Book{}, nil)
	rr = serve(t, router, http.MethodGet, "/api/v2/books", "", bearer(testToken)...)
	assert.Equal(t, "No books found", decodeEnvelope(t, rr).Message)
}
