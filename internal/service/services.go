package service

import (
	"github.com/MKhiriev/go-books-api/internal/config"
	"github.com/MKhiriev/go-books-api/internal/crypto"
	"github.com/MKhiriev/go-books-api/internal/logger"
	"github.com/MKhiriev/go-books-api/internal/store"
	"github.com/MKhiriev/go-books-api/internal/validators"
	"github.com/MKhiriev/go-books-api/models"
)

type Services struct {
	AuthService    AuthService
	TokenService   TokenService
	BookService    BookService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, storages.Pinger, logger)
	if err != nil {
		return nil, err
	}

	tokens := NewTokenService(cfg.App)
	books := NewBookValidationService(validators.NewBookValidator()).
		Wrap(NewBookService(storages.BookRepository, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, crypto.NewPasswordHasher(), tokens, validators.NewUserValidator(), logger),
		TokenService:   tokens,
		BookService:    books,
		AppInfoService: appInfo,
	}, nil
}
