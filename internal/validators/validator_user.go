package validators

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-books-api/internal/app"
	"github.com/MKhiriev/go-books-api/models"
)

const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	// FieldLoginPassword only requires a non-empty password. Strength rules
	// apply at registration, not at login.
	FieldLoginPassword = "login_password"
)

const (
	maxEmailLength    = 255
	minPasswordLength = 8
	maxPasswordLength = 50
	minUsernameLength = 3
	maxUsernameLength = 50
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9_+&*-]+(?:\.[a-zA-Z0-9_+&*-]+)*@(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,7}$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
	hasLetter       = regexp.MustCompile(`[a-zA-Z]`)
	hasDigit        = regexp.MustCompile(`[0-9]`)

	commonPasswords = map[string]struct{}{
		"password":  {},
		"12345678":  {},
		"qwerty123": {},
		"admin123":  {},
	}
)

// UserValidator checks registration and login input.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateUser(ctx, value.ToUser(), fields...)
	case *models.RegisterRequest:
		return v.validateUser(ctx, value.ToUser(), fields...)

	case models.LoginRequest:
		return v.validateLogin(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(ctx, *value, fields...)

	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUsername:
			err = validateUsername(user.Username)
		case FieldEmail:
			err = validateEmail(user.Email)
		case FieldPassword:
			err = validatePassword(user.Password)
		case FieldLoginPassword:
			if user.Password == "" {
				err = newValidationError(FieldPassword, app.MsgPasswordEmpty)
			}
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *UserValidator) validateLogin(ctx context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldLoginPassword}
	}

	return v.validateUser(ctx, models.User{Username: request.Username, Password: request.Password}, fields...)
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return newValidationError(FieldEmail, app.MsgEmailEmpty)
	}
	if len(email) > maxEmailLength {
		return newValidationError(FieldEmail, app.MsgEmailTooLong, maxEmailLength)
	}
	if !emailPattern.MatchString(email) {
		return newValidationError(FieldEmail, app.MsgEmailInvalid)
	}

	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return newValidationError(FieldPassword, app.MsgPasswordEmpty)
	}

	length := utf8.RuneCountInString(password)
	if length < minPasswordLength {
		return newValidationError(FieldPassword, app.MsgPasswordTooShort, minPasswordLength)
	}
	if length > maxPasswordLength {
		return newValidationError(FieldPassword, app.MsgPasswordTooLong, maxPasswordLength)
	}
	if !hasLetter.MatchString(password) {
		return newValidationError(FieldPassword, app.MsgPasswordNoLetter)
	}
	if !hasDigit.MatchString(password) {
		return newValidationError(FieldPassword, app.MsgPasswordNoDigit)
	}
	if _, common := commonPasswords[strings.ToLower(password)]; common {
		return newValidationError(FieldPassword, app.MsgPasswordTooCommon)
	}

	return nil
}

func validateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return newValidationError(FieldUsername, app.MsgUsernameEmpty)
	}
	if len(username) < minUsernameLength {
		return newValidationError(FieldUsername, app.MsgUsernameTooShort, minUsernameLength)
	}
	if len(username) > maxUsernameLength {
		return newValidationError(FieldUsername, app.MsgUsernameTooLong, maxUsernameLength)
	}
	if !usernamePattern.MatchString(username) {
		return newValidationError(FieldUsername, app.MsgUsernameChars)
	}

	return nil
}
