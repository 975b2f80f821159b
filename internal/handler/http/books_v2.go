package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-books-api/internal/app"
	"github.com/MKhiriev/go-books-api/models"
)

const booksV2Path = "/api/v2/books/"

// The v2 book routes share v1 semantics but carry no entity tags: no ETag
// header, no conditional GET and no If-Match check on update.

func (h *Handler) listBooksV2(w http.ResponseWriter, r *http.Request) {
	books, err := h.services.BookService.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, listMessage(books), books)
}

func (h *Handler) getBookV2(w http.ResponseWriter, r *http.Request) {
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

	h.writeSuccess(w, r, http.StatusOK, app.MsgSuccess, book)
}

func (h *Handler) createBookV2(w http.ResponseWriter, r *http.Request) {
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

	w.Header().Set("Location", booksV2Path+strconv.FormatInt(created.ID, 10))
	h.writeSuccess(w, r, http.StatusCreated, app.MsgBookCreated, created)
}

func (h *Handler) updateBookV2(w http.ResponseWriter, r *http.Request) {
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

	updated, err := h.services.BookService.Update(r.Context(), id, book, "")
	if err != nil {
		h.writeError(w, r, err, rawID)
		return
	}

	h.writeSuccess(w, r, http.StatusOK, app.MsgBookUpdated, updated)
}

func (h *Handler) deleteBookV2(w http.ResponseWriter, r *http.Request) {
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
