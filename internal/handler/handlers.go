package handler

import (
	"github.com/MKhiriev/go-books-api/internal/config"
	"github.com/MKhiriev/go-books-api/internal/handler/grpc"
	"github.com/MKhiriev/go-books-api/internal/handler/http"
	"github.com/MKhiriev/go-books-api/internal/i18n"
	"github.com/MKhiriev/go-books-api/internal/logger"
	"github.com/MKhiriev/go-books-api/internal/ratelimit"
	"github.com/MKhiriev/go-books-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, limiter ratelimit.Limiter, translator i18n.Translator, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, limiter, translator, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
