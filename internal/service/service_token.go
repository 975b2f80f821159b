package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-books-api/internal/config"
	"github.com/MKhiriev/go-books-api/internal/logger"
	"github.com/MKhiriev/go-books-api/internal/utils"
	"github.com/MKhiriev/go-books-api/models"
)

// tokenService signs HS256 JWTs whose subject is the username.
type tokenService struct {
	// signKey is the HMAC secret used to sign and verify tokens.
	signKey string

	// issuer is the "iss" claim embedded in every issued token. Tokens whose
	// issuer does not match are rejected.
	issuer string

	// ttl controls how long a newly issued token remains valid.
	ttl time.Duration

	now func() time.Time
}

// TokenOption customises a TokenService.
type TokenOption func(*tokenService)

// WithTokenClock replaces time.Now for issuing and verifying tokens.
func WithTokenClock(now func() time.Time) TokenOption {
	return func(s *tokenService) {
		s.now = now
	}
}

func NewTokenService(cfg config.App, opts ...TokenOption) TokenService {
	s := &tokenService{
		signKey: cfg.TokenSignKey,
		issuer:  cfg.TokenIssuer,
		ttl:     cfg.TokenDuration,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *tokenService) Issue(ctx context.Context, subject string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.issuer, subject, s.ttl, s.signKey, s.now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreation, err)
	}

	return token, nil
}

// Verify never leaks the parser error to the caller; it is logged at debug
// level and normalised to ErrInvalidToken.
func (s *tokenService) Verify(ctx context.Context, token string) (string, error) {
	parsed, err := utils.ValidateAndParseJWTToken(token, s.signKey, s.issuer, jwt.WithTimeFunc(s.now))
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token verification failed")
		return "", ErrInvalidToken
	}

	return parsed.Subject, nil
}
