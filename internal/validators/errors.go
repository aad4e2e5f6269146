package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail   = errors.New("email is required")
	ErrInvalidEmail = errors.New("invalid email address")

	ErrEmptyPassword      = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordNoUpper    = errors.New("password must contain an uppercase letter")
	ErrPasswordNoLower    = errors.New("password must contain a lowercase letter")
	ErrPasswordNoDigit    = errors.New("password must contain a digit")
	ErrFullNameTooLong    = errors.New("full name must be at most 255 characters")
	ErrKeyNameTooLong     = errors.New("key name must be at most 255 characters")
	ErrNegativeKeyExpiry  = errors.New("key expiry must be a positive number of days")
	ErrInvalidRateLimit   = errors.New("rate limits must be positive")
	ErrEmptyMemoryContent = errors.New("memory content is required")
)
