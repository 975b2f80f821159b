package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Every request passes rate limiting first, then
// tracing, access logging, locale negotiation and bearer authentication.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRateLimit)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(h.withLocale)
	router.Use(h.authenticate)
	router.Use(withGZip)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.CheckHTTPMethod)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/v1/auth/register", h.register)
		r.Post("/api/v1/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/health", h.health)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.requireAuth)

		r.Get("/api/v1/auth/me", h.me)

		r.Get("/api/v1/books", h.listBooks)
		r.Post("/api/v1/books", h.createBook)
		r.Get("/api/v1/books/{id}", h.getBook)
		r.Put("/api/v1/books/{id}", h.updateBook)
		r.Delete("/api/v1/books/{id}", h.deleteBook)

		r.Get("/api/v2/books", h.listBooksV2)
		r.Post("/api/v2/books", h.createBookV2)
		r.Get("/api/v2/books/{id}", h.getBookV2)
		r.Put("/api/v2/books/{id}", h.updateBookV2)
		r.Delete("/api/v2/books/{id}", h.deleteBookV2)
	})

	return router
}
