package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-books-api/internal/crypto"
	"github.com/MKhiriev/go-books-api/internal/logger"
	"github.com/MKhiriev/go-books-api/internal/store"
	"github.com/MKhiriev/go-books-api/internal/validators"
	"github.com/MKhiriev/go-books-api/models"
)

// TokenType is the scheme clients put in front of issued tokens.
const TokenType = "Bearer"

const decoyPassword = "go-books-api decoy password"

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and bearer token
// resolution using a UserRepository for persistence and argon2id for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher derives and checks password hashes; plaintext is never stored.
	hasher crypto.PasswordHasher

	tokens    TokenService
	validator validators.Validator

	// decoyHash is verified against when the username is unknown so that
	// both login failures cost one argon2 derivation.
	decoyHash func() (string, error)

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, tokens TokenService, validator validators.Validator, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		validator:      validator,
		logger:         logger,
		decoyHash: sync.OnceValues(func() (string, error) {
			return hasher.Hash(decoyPassword)
		}),
	}
}

// Register creates a new enabled account and issues its first token.
//
// Returns a *validators.ValidationError for malformed input,
// ErrUsernameTaken or ErrEmailTaken for duplicates, or a wrapped storage
// error.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		return models.AuthResponse{}, err
	}

	if err := a.ensureUnique(ctx, request); err != nil {
		return models.AuthResponse{}, err
	}

	hash, err := a.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("password hashing failed")
		return models.AuthResponse{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := request.ToUser()
	user.Password = hash
	user.Enabled = true

	created, err := a.userRepository.Create(ctx, user)
	switch {
	case errors.Is(err, store.ErrUsernameTaken):
		return models.AuthResponse{}, ErrUsernameTaken
	case errors.Is(err, store.ErrEmailTaken):
		return models.AuthResponse{}, ErrEmailTaken
	case err != nil:
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("username", created.Username).Msg("user registered")
	return a.respond(ctx, created)
}

func (a *authService) ensureUnique(ctx context.Context, request models.RegisterRequest) error {
	taken, err := a.userRepository.ExistsByUsername(ctx, request.Username)
	if err != nil {
		return fmt.Errorf("username lookup failed: %w", err)
	}
	if taken {
		return ErrUsernameTaken
	}

	taken, err = a.userRepository.ExistsByEmail(ctx, request.Email)
	if err != nil {
		return fmt.Errorf("email lookup failed: %w", err)
	}
	if taken {
		return ErrEmailTaken
	}

	return nil
}

// Login checks the credentials and issues a token.
//
// Returns the authenticated user's token or:
//   - a *validators.ValidationError if username or password is empty.
//   - ErrInvalidCredentials for an unknown user, a wrong password or a
//     disabled account.
//   - a wrapped storage error if the repository lookup fails.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		return models.AuthResponse{}, err
	}

	user, err := a.userRepository.FindByUsername(ctx, request.Username)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		log.Info().Str("username", request.Username).Msg("login for unknown user")
		a.verifyDecoy(request.Password)
		return models.AuthResponse{}, ErrInvalidCredentials
	case err != nil:
		return models.AuthResponse{}, fmt.Errorf("user search by username failed: %w", err)
	}

	ok, err := a.hasher.Verify(request.Password, user.Password)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("stored password hash is unreadable")
		return models.AuthResponse{}, ErrInvalidCredentials
	}
	if !ok {
		log.Info().Int64("id", user.UserID).Msg("wrong password")
		return models.AuthResponse{}, ErrInvalidCredentials
	}
	if !user.Enabled {
		log.Info().Int64("id", user.UserID).Msg("login for disabled user")
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	return a.respond(ctx, user)
}

// verifyDecoy spends the same argon2 work as a real password check.
func (a *authService) verifyDecoy(password string) {
	hash, err := a.decoyHash()
	if err != nil {
		a.logger.Err(err).Msg("decoy password hashing failed")
		return
	}
	_, _ = a.hasher.Verify(password, hash)
}

func (a *authService) respond(ctx context.Context, user models.User) (models.AuthResponse, error) {
	token, err := a.tokens.Issue(ctx, user.Username)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", user.Username).Msg("token creation failed")
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{
		Token:    token.SignedString,
		Type:     TokenType,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

// Authenticate verifies token and loads the subject. A token for a deleted
// user is ErrInvalidToken, one for a disabled user ErrUserDisabled.
func (a *authService) Authenticate(ctx context.Context, token string) (models.Identity, error) {
	username, err := a.tokens.Verify(ctx, token)
	if err != nil {
		return models.Identity{}, err
	}

	user, err := a.userRepository.FindByUsername(ctx, username)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return models.Identity{}, ErrInvalidToken
	case err != nil:
		return models.Identity{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !user.Enabled {
		return models.Identity{}, ErrUserDisabled
	}

	return models.NewIdentity(user), nil
}
