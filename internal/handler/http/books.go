package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-books-api/internal/app"
	"github.com/MKhiriev/go-books-api/internal/etag"
	"github.com/MKhiriev/go-books-api/internal/logger"
	"github.com/MKhiriev/go-books-api/models"
)

const booksV1Path = "/api/v1/books/"

// listBooks serves the collection with an ETag over the whole slice.
func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.services.BookService.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if h.notModified(w, r, books) {
		return
	}

	h.writeSuccess(w, r, http.StatusOK, listMessage(books), books)
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	id, rawID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err, rawID)
		return
	}

	book, err := h.services.BookService.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err, rawID)
		return
	}

	if h.notModified(w, r, book) {
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgSuccess, book)
}

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	var book models.Book
	if err := decodeJSON(w, r, &book); err != nil {
		h.writeError(w, r, err)
		return
	}

	created, err := h.services.BookService.Create(r.Context(), book)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if !h.setETag(w, r, created) {
		return
	}
	w.Header().Set("Location", booksV1Path+strconv.FormatInt(created.ID, 10))
	h.writeSuccess(w, r, http.StatusCreated, app.MsgBookCreated, created)
}

// updateBook forwards If-Match to the service, which answers 412 when the
// stored representation has changed.
func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	id, rawID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err, rawID)
		return
	}

	var book models.Book
	if err := decodeJSON(w, r, &book); err != nil {
		h.writeError(w, r, err)
		return
	}

	updated, err := h.services.BookService.Update(r.Context(), id, book, r.Header.Get(etag.HeaderIfMatch))
	if err != nil {
		h.writeError(w, r, err, rawID)
		return
	}

	if !h.setETag(w, r, updated) {
		return
	}
	h.writeSuccess(w, r, http.StatusOK, app.MsgBookUpdated, updated)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	id, rawID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err, rawID)
		return
	}

	if err := h.services.BookService.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err, rawID)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgBookDeleted, nil, rawID)
}

// setETag fingerprints data and sets the ETag header. On failure it writes
// a 500 and returns false.
func (h *Handler) setETag(w http.ResponseWriter, r *http.Request, data any) bool {
	tag, err := etag.Fingerprint(data)
	if err != nil {
		h.writeError(w, r, err)
		return false
	}

	w.Header().Set(etag.HeaderETag, tag)
	return true
}

// notModified sets the ETag of data and answers 304 without a body when
// If-None-Match matches it. It returns true when the response is complete.
func (h *Handler) notModified(w http.ResponseWriter, r *http.Request, data any) bool {
	if !h.setETag(w, r, data) {
		return true
	}

	if etag.NoneMatch(r.Header.Get(etag.HeaderIfNoneMatch), w.Header().Get(etag.HeaderETag)) {
		logger.FromRequest(r).Debug().Str("uri", r.RequestURI).Msg("not modified")
		w.WriteHeader(http.StatusNotModified)
		return true
	}

	return false
}

func listMessage(books []models.Book) string {
	if len(books) == 0 {
		return app.MsgBookListEmpty
	}
	return app.MsgSuccess
}
