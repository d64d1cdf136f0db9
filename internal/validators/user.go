package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/music-auth/models"
)

// Field names accepted by UserValidator.Validate for field-level scoping.
const (
	// FieldEmail requires a non-empty email.
	FieldEmail = "email"

	// FieldEmailFormat requires the email to be a bare RFC 5322 address
	// ("a@x.com", not "A <a@x.com>").
	FieldEmailFormat = "email_format"

	FieldPassword     = "password"
	FieldSpotifyToken = "spotify_token"
)

// UserValidator validates the account requests accepted by the auth service:
// SignupRequest, SigninRequest and FederatedRegisterRequest.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. When fields is empty a per-type default set is checked.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignupRequest(ctx, value, fields...)
	case *models.SignupRequest:
		return v.validateSignupRequest(ctx, *value, fields...)

	case models.SigninRequest:
		return v.validateSigninRequest(ctx, value, fields...)
	case *models.SigninRequest:
		return v.validateSigninRequest(ctx, *value, fields...)

	case models.FederatedRegisterRequest:
		return v.validateFederatedRegisterRequest(ctx, value, fields...)
	case *models.FederatedRegisterRequest:
		return v.validateFederatedRegisterRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateSignupRequest(_ context.Context, request models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldEmailFormat, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(request.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldEmailFormat:
			if !isBareAddress(request.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// Signin checks presence only; an address that could never have signed up
// simply fails the lookup.
func (v *UserValidator) validateSigninRequest(_ context.Context, request models.SigninRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if request.Email == "" {
				return ErrEmptyEmail
			}
		case FieldEmailFormat:
			if !isBareAddress(request.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateFederatedRegisterRequest(_ context.Context, request models.FederatedRegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSpotifyToken}
	}

	for _, f := range fields {
		switch f {
		case FieldSpotifyToken:
			if strings.TrimSpace(request.SpotifyToken) == "" {
				return ErrEmptySpotifyToken
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// NormalizeEmail lowercases the domain part of email. The local part is
// kept as sent since it may be case-sensitive.
func NormalizeEmail(email string) string {
	at := strings.LastIndexByte(email, '@')
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

func isBareAddress(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Name == "" && addr.Address == email
}
