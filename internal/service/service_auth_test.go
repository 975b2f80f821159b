package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-books-api/internal/logger"
	"github.com/MKhiriev/go-books-api/internal/mock"
	"github.com/MKhiriev/go-books-api/internal/store"
	"github.com/MKhiriev/go-books-api/internal/validators"
	"github.com/MKhiriev/go-books-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authMocks struct {
	users  *mock.MockUserRepository
	hasher *mock.MockPasswordHasher
	tokens *mock.MockTokenService
}

func newTestAuthSvc(t *testing.T) (AuthService, authMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := authMocks{
		users:  mock.NewMockUserRepository(ctrl),
		hasher: mock.NewMockPasswordHasher(ctrl),
		tokens: mock.NewMockTokenService(ctrl),
	}

	return NewAuthService(m.users, m.hasher, m.tokens, validators.NewUserValidator(), logger.Nop()), m
}

var aliceRegistration = models.RegisterRequest{
	Username: "alice",
	Email:    "alice@example.com",
	Password: "Secret123",
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		m.users.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil),
		m.users.EXPECT().ExistsByEmail(ctx, "alice@example.com").Return(false, nil),
		m.hasher.EXPECT().Hash("Secret123").Return("$argon2id$hash", nil),
		m.users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "$argon2id$hash", u.Password, "plaintext must never reach the store")
				assert.True(t, u.Enabled)
				u.UserID = 1
				return u, nil
			},
		),
		m.tokens.EXPECT().Issue(ctx, "alice").Return(models.Token{SignedString: "jwt"}, nil),
	)

	resp, err := svc.Register(ctx, aliceRegistration)
	require.NoError(t, err)
	assert.Equal(t, models.AuthResponse{Token: "jwt", Type: "Bearer", Username: "alice", Email: "alice@example.com"}, resp)
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	req := aliceRegistration
	req.Password = "short1"

	_, err := svc.Register(context.Background(), req)
	require.ErrorIs(t, err, validators.ErrValidation)
}

func TestAuthService_Register_Duplicates(t *testing.T) {
	t.Run("username", func(t *testing.T) {
		svc, m := newTestAuthSvc(t)
		m.users.EXPECT().ExistsByUsername(gomock.Any(), "alice").Return(true, nil)

		_, err := svc.Register(context.Background(), aliceRegistration)
		require.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("email", func(t *testing.T) {
		svc, m := newTestAuthSvc(t)
		m.users.EXPECT().ExistsByUsername(gomock.Any(), "alice").Return(false, nil)
		m.users.EXPECT().ExistsByEmail(gomock.Any(), "alice@example.com").Return(true, nil)

		_, err := svc.Register(context.Background(), aliceRegistration)
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("race on insert", func(t *testing.T) {
		svc, m := newTestAuthSvc(t)
		m.users.EXPECT().ExistsByUsername(gomock.Any(), gomock.Any()).Return(false, nil)
		m.users.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any()).Return(false, nil)
		m.hasher.EXPECT().Hash(gomock.Any()).Return("hash", nil)
		m.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailTaken)

		_, err := svc.Register(context.Background(), aliceRegistration)
		require.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestAuthService_Register_StoreError(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	dbErr := errors.New("db down")

	m.users.EXPECT().ExistsByUsername(gomock.Any(), gomock.Any()).Return(false, dbErr)

	_, err := svc.Register(context.Background(), aliceRegistration)
	require.ErrorIs(t, err, dbErr)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	stored := models.User{UserID: 1, Username: "alice", Email: "alice@example.com", Password: "hash", Enabled: true}
	disabled := stored
	disabled.Enabled = false

	tests := []struct {
		name    string
		setup   func(m authMocks)
		wantErr error
	}{
		{
			name: "success",
			setup: func(m authMocks) {
				m.users.EXPECT().FindByUsername(gomock.Any(), "alice").Return(stored, nil)
				m.hasher.EXPECT().Verify("Secret123", "hash").Return(true, nil)
				m.tokens.EXPECT().Issue(gomock.Any(), "alice").Return(models.Token{SignedString: "jwt"}, nil)
			},
		},
		{
			name: "unknown user",
			setup: func(m authMocks) {
				m.users.EXPECT().FindByUsername(gomock.Any(), "alice").Return(models.User{}, store.ErrUserNotFound)
				m.hasher.EXPECT().Hash(decoyPassword).Return("decoy", nil)
				m.hasher.EXPECT().Verify("Secret123", "decoy").Return(false, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setup: func(m authMocks) {
				m.users.EXPECT().FindByUsername(gomock.Any(), "alice").Return(stored, nil)
				m.hasher.EXPECT().Verify("Secret123", "hash").Return(false, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name: "disabled user",
			setup: func(m authMocks) {
				m.users.EXPECT().FindByUsername(gomock.Any(), "alice").Return(disabled, nil)
				m.hasher.EXPECT().Verify("Secret123", "hash").Return(true, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name: "corrupt hash",
			setup: func(m authMocks) {
				m.users.EXPECT().FindByUsername(gomock.Any(), "alice").Return(stored, nil)
				m.hasher.EXPECT().Verify("Secret123", "hash").Return(false, errors.New("invalid hash"))
			},
			wantErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestAuthSvc(t)
			tt.setup(m)

			resp, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "Secret123"})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, resp.Token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "jwt", resp.Token)
			assert.Equal(t, "Bearer", resp.Type)
		})
	}
}

func TestAuthService_Login_UnknownUserHashesDecoyOnce(t *testing.T) {
	svc, m := newTestAuthSvc(t)
	ctx := context.Background()

	m.users.EXPECT().FindByUsername(ctx, gomock.Any()).Return(models.User{}, store.ErrUserNotFound).Times(2)
	m.hasher.EXPECT().Hash(decoyPassword).Return("decoy", nil).Times(1)
	m.hasher.EXPECT().Verify(gomock.Any(), "decoy").Return(false, nil).Times(2)

	_, err := svc.Login(ctx, models.LoginRequest{Username: "ghost", Password: "Secret123"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, models.LoginRequest{Username: "phantom", Password: "Other456"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUserDecoyHashFails(t *testing.T) {
	svc, m := newTestAuthSvc(t)

	m.users.EXPECT().FindByUsername(gomock.Any(), "ghost").Return(models.User{}, store.ErrUserNotFound)
	m.hasher.EXPECT().Hash(decoyPassword).Return("", errors.New("no entropy"))

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "ghost", Password: "Secret123"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_EmptyPassword(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice"})
	require.ErrorIs(t, err, validators.ErrValidation)
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestAuthService_Authenticate(t *testing.T) {
	t.Run("enabled user", func(t *testing.T) {
		svc, m := newTestAuthSvc(t)
		m.tokens.EXPECT().Verify(gomock.Any(), "jwt").Return("alice", nil)
		m.users.EXPECT().FindByUsername(gomock.Any(), "alice").
			Return(models.User{UserID: 1, Username: "alice", Email: "a@x.io", Password: "hash", Enabled: true}, nil)

		id, err := svc.Authenticate(context.Background(), "jwt")
		require.NoError(t, err)
		assert.Equal(t, models.Identity{UserID: 1, Username: "alice", Email: "a@x.io", Enabled: true}, id)
	})

	t.Run("invalid token", func(t *testing.T) {
		svc, m := newTestAuthSvc(t)
		m.tokens.EXPECT().Verify(gomock.Any(), "bad").Return("", ErrInvalidToken)

		_, err := svc.Authenticate(context.Background(), "bad")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("deleted user", func(t *testing.T) {
		svc, m := newTestAuthSvc(t)
		m.tokens.EXPECT().Verify(gomock.Any(), "jwt").Return("ghost", nil)
		m.users.EXPECT().FindByUsername(gomock.Any(), "ghost").Return(models.User{}, store.ErrUserNotFound)

		_, err := svc.Authenticate(context.Background(), "jwt")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("disabled user", func(t *testing.T) {
		svc, m := newTestAuthSvc(t)
		m.tokens.EXPECT().Verify(gomock.Any(), "jwt").Return("alice", nil)
		m.users.EXPECT().FindByUsername(gomock.Any(), "alice").Return(models.User{Username: "alice"}, nil)

		_, err := svc.Authenticate(context.Background(), "jwt")
		require.ErrorIs(t, err, ErrUserDisabled)
	})
}
