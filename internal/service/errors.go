package service

import (
	"errors"
	"fmt"

	"github.com/coladapo/puo-memo-platform/internal/validators"
)

var (
	// ErrInvalidCredentials is returned on login when the email is unknown or
	// the password does not match. The two causes are deliberately collapsed
	// into one error so responses never reveal whether an account exists.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountDeactivated is returned when the credentials are correct but
	// the account has been deactivated.
	ErrAccountDeactivated = errors.New("account is deactivated")

	// ErrTokenInvalid is returned for any bearer token failure: bad signature,
	// wrong issuer, expiry, malformed claims.
	ErrTokenInvalid = errors.New("invalid or expired token")

	// ErrAPIKeyInvalid is returned for any API key failure: unknown key,
	// deactivated key, expired key. Causes are distinguished in logs only.
	ErrAPIKeyInvalid = errors.New("invalid API key")

	// ErrMonthlyLimitExceeded is returned when a memory write would exceed the
	// monthly quota of the user's subscription tier.
	ErrMonthlyLimitExceeded = errors.New("monthly memory limit exceeded")
)

// ValidationError reports a rejected request field. It unwraps to both
// [ErrInvalidDataProvided] and the underlying validators sentinel, so callers
// can branch on the class with errors.Is while the message keeps the
// field-level detail.
type ValidationError struct {
	Field string
	cause error
}

// ErrInvalidDataProvided is the class error every [ValidationError] wraps.
var ErrInvalidDataProvided = errors.New("invalid data provided")

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidDataProvided, e.Field, e.cause)
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrInvalidDataProvided, e.cause}
}

// newValidationError wraps a validator sentinel with the request field it
// guards. A nil error passes through untouched.
func newValidationError(err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: validationField(err), cause: err}
}

// validationField names the request field a validator sentinel guards.
func validationField(err error) string {
	switch {
	case errors.Is(err, validators.ErrEmptyEmail),
		errors.Is(err, validators.ErrInvalidEmail):
		return "email"
	case errors.Is(err, validators.ErrEmptyPassword),
		errors.Is(err, validators.ErrPasswordTooShort),
		errors.Is(err, validators.ErrPasswordNoUpper),
		errors.Is(err, validators.ErrPasswordNoLower),
		errors.Is(err, validators.ErrPasswordNoDigit):
		return "password"
	case errors.Is(err, validators.ErrFullNameTooLong):
		return "full_name"
	case errors.Is(err, validators.ErrKeyNameTooLong):
		return "name"
	case errors.Is(err, validators.ErrNegativeKeyExpiry):
		return "expires_in_days"
	case errors.Is(err, validators.ErrInvalidRateLimit):
		return "rate_limits"
	case errors.Is(err, validators.ErrEmptyMemoryContent):
		return "content"
	default:
		return "request"
	}
}
