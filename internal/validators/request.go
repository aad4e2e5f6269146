package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode"

	"github.com/coladapo/puo-memo-platform/models"
)

const (
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldFullName   = "full_name"
	FieldKeyName    = "key_name"
	FieldKeyExpiry  = "key_expiry"
	FieldRateLimits = "rate_limits"
	FieldContent    = "content"

	minPasswordLength = 8
	maxNameLength     = 255
)

// RequestValidator enforces the request-level business rules of the public
// API: email shape, password policy, key issuance parameters, memory content.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.CreateAPIKeyRequest:
		return v.validateCreateAPIKeyRequest(ctx, value, fields...)
	case *models.CreateAPIKeyRequest:
		return v.validateCreateAPIKeyRequest(ctx, *value, fields...)

	case models.CreateMemoryRequest:
		return v.validateCreateMemoryRequest(ctx, value, fields...)
	case *models.CreateMemoryRequest:
		return v.validateCreateMemoryRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegisterRequest(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldFullName}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(req.Email); err != nil {
				return err
			}
		case FieldPassword:
			if err := validatePassword(req.Password); err != nil {
				return err
			}
		case FieldFullName:
			if len(req.FullName) > maxNameLength {
				return ErrFullNameTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLoginRequest only checks presence: the stored password policy may
// predate the current one, so login never re-applies complexity rules.
func (v *RequestValidator) validateLoginRequest(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if req.Email == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCreateAPIKeyRequest(_ context.Context, req models.CreateAPIKeyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKeyName, FieldKeyExpiry, FieldRateLimits}
	}

	for _, f := range fields {
		switch f {
		case FieldKeyName:
			if len(req.Name) > maxNameLength {
				return ErrKeyNameTooLong
			}
		case FieldKeyExpiry:
			if req.ExpiresInDays != nil && *req.ExpiresInDays < 0 {
				return ErrNegativeKeyExpiry
			}
		case FieldRateLimits:
			if req.RateLimitPerMinute < 0 || req.RateLimitPerHour < 0 {
				return ErrInvalidRateLimit
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCreateMemoryRequest(_ context.Context, req models.CreateMemoryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldContent:
			if strings.TrimSpace(req.Content) == "" {
				return ErrEmptyMemoryContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return ErrEmptyEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	// require a dotted domain: "user@localhost" is valid RFC 5322 but not a
	// deliverable account address here
	at := strings.LastIndex(email, "@")
	if !strings.Contains(email[at+1:], ".") {
		return ErrInvalidEmail
	}

	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	switch {
	case !hasUpper:
		return ErrPasswordNoUpper
	case !hasLower:
		return ErrPasswordNoLower
	case !hasDigit:
		return ErrPasswordNoDigit
	}

	return nil
}
