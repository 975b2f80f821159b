package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-books-api/internal/app"
	"github.com/MKhiriev/go-books-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Secret123",
	}
}

func requireValidationKey(t *testing.T, err error, field, key string) {
	t.Helper()
	require.ErrorIs(t, err, ErrValidation)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, field, vErr.Field)
	assert.Equal(t, key, vErr.Key)
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestUserValidator_Dispatch(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("RegisterRequest value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validRegisterRequest()))
	})

	t.Run("RegisterRequest pointer", func(t *testing.T) {
		r := validRegisterRequest()
		require.NoError(t, v.Validate(ctx, &r))
	})

	t.Run("User value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validRegisterRequest().ToUser()))
	})

	t.Run("LoginRequest pointer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &models.LoginRequest{Username: "alice", Password: "x"}))
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, validRegisterRequest(), "nickname"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// Email
// ---------------------------------------------------------------------------

func TestUserValidator_Email(t *testing.T) {
	v := NewUserValidator()

	tests := []struct {
		name  string
		email string
		key   string
	}{
		{name: "valid", email: "john.doe+books@mail.example.org"},
		{name: "empty", email: "", key: app.MsgEmailEmpty},
		{name: "blank", email: "   ", key: app.MsgEmailEmpty},
		{name: "missing at", email: "john.example.com", key: app.MsgEmailInvalid},
		{name: "missing tld", email: "john@example", key: app.MsgEmailInvalid},
		{name: "tld too long", email: "john@example.abcdefgh", key: app.MsgEmailInvalid},
		{name: "too long", email: strings.Repeat("a", 250) + "@ex.com", key: app.MsgEmailTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), models.User{Email: tt.email}, FieldEmail)
			if tt.key == "" {
				require.NoError(t, err)
				return
			}
			requireValidationKey(t, err, FieldEmail, tt.key)
		})
	}
}

// ---------------------------------------------------------------------------
// Password
// ---------------------------------------------------------------------------

func TestUserValidator_Password(t *testing.T) {
	v := NewUserValidator()

	tests := []struct {
		name     string
		password string
		key      string
	}{
		{name: "valid", password: "Secret123"},
		{name: "empty", password: "", key: app.MsgPasswordEmpty},
		{name: "too short", password: "abc1", key: app.MsgPasswordTooShort},
		{name: "too long", password: strings.Repeat("a1", 26), key: app.MsgPasswordTooLong},
		{name: "no letter", password: "123456789", key: app.MsgPasswordNoLetter},
		{name: "no digit", password: "abcdefghi", key: app.MsgPasswordNoDigit},
		{name: "common", password: "Qwerty123", key: app.MsgPasswordTooCommon},
		{name: "common admin", password: "ADMIN123", key: app.MsgPasswordTooCommon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), models.User{Password: tt.password}, FieldPassword)
			if tt.key == "" {
				require.NoError(t, err)
				return
			}
			requireValidationKey(t, err, FieldPassword, tt.key)
		})
	}
}

func TestUserValidator_PasswordLengthParam(t *testing.T) {
	err := NewUserValidator().Validate(context.Background(), models.User{Password: "a1"}, FieldPassword)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []any{8}, vErr.Params)
}

// ---------------------------------------------------------------------------
// Username
// ---------------------------------------------------------------------------

func TestUserValidator_Username(t *testing.T) {
	v := NewUserValidator()

	tests := []struct {
		name     string
		username string
		key      string
	}{
		{name: "valid", username: "john_doe.99-x"},
		{name: "empty", username: "", key: app.MsgUsernameEmpty},
		{name: "too short", username: "ab", key: app.MsgUsernameTooShort},
		{name: "too long", username: strings.Repeat("a", 51), key: app.MsgUsernameTooLong},
		{name: "space", username: "john doe", key: app.MsgUsernameChars},
		{name: "at sign", username: "john@doe", key: app.MsgUsernameChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), models.User{Username: tt.username}, FieldUsername)
			if tt.key == "" {
				require.NoError(t, err)
				return
			}
			requireValidationKey(t, err, FieldUsername, tt.key)
		})
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestUserValidator_LoginSkipsStrengthRules(t *testing.T) {
	v := NewUserValidator()

	require.NoError(t, v.Validate(context.Background(), models.LoginRequest{Username: "alice", Password: "weak"}))

	err := v.Validate(context.Background(), models.LoginRequest{Username: "alice"})
	requireValidationKey(t, err, FieldPassword, app.MsgPasswordEmpty)

	err = v.Validate(context.Background(), models.LoginRequest{Password: "x"})
	requireValidationKey(t, err, FieldUsername, app.MsgUsernameEmpty)
}

func TestUserValidator_RegisterChecksFieldsInOrder(t *testing.T) {
	err := NewUserValidator().Validate(context.Background(), models.RegisterRequest{})
	requireValidationKey(t, err, FieldUsername, app.MsgUsernameEmpty)
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "email: validation.email.empty", newValidationError(FieldEmail, app.MsgEmailEmpty).Error())
	assert.Equal(t, "password: validation.password.tooshort [8]", newValidationError(FieldPassword, app.MsgPasswordTooShort, 8).Error())
}
