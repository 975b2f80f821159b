package http

import (
	"github.com/MKhiriev/go-books-api/internal/i18n"
	"github.com/MKhiriev/go-books-api/internal/logger"
	"github.com/MKhiriev/go-books-api/internal/ratelimit"
	"github.com/MKhiriev/go-books-api/internal/service"
)

type Handler struct {
	services   *service.Services
	limiter    ratelimit.Limiter
	translator i18n.Translator

	logger *logger.Logger
}

func NewHandler(services *service.Services, limiter ratelimit.Limiter, translator i18n.Translator, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		limiter:    limiter,
		translator: translator,
		logger:     logger,
	}
}
