package models

// RegisterRequest is the payload of POST /auth/register.
type RegisterRequest struct {
	// Email is the unique login identifier for the new account.
	// Required.
	Email string `json:"email"`

	// Password is the plaintext password. It is validated against the
	// complexity policy, hashed, and discarded, never stored or logged.
	// Required.
	Password string `json:"password"`

	// FullName is the optional display name of the user.
	FullName string `json:"full_name,omitempty"`
}

// LoginRequest is the payload of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateAPIKeyRequest is the payload of POST /api-keys.
// Zero-valued fields fall back to server-side defaults.
type CreateAPIKeyRequest struct {
	// Name is the human-readable label of the key.
	// Defaults to "Default API Key".
	Name string `json:"name,omitempty"`

	// ExpiresInDays sets the key expiry to now + N days. Omitted (nil)
	// means the key never expires; an explicit 0 yields a key that is
	// already expired by the time it can be validated.
	ExpiresInDays *int `json:"expires_in_days,omitempty"`

	// RateLimitPerMinute is the per-minute request budget. Defaults to 60.
	RateLimitPerMinute int `json:"rate_limit_per_minute,omitempty"`

	// RateLimitPerHour is the per-hour request budget. Defaults to 1000.
	RateLimitPerHour int `json:"rate_limit_per_hour,omitempty"`
}

// CreateMemoryRequest is the payload of POST /memories.
type CreateMemoryRequest struct {
	// Content is the text to remember. Required.
	Content string `json:"content"`

	// Title is an optional short label; defaults to a content excerpt.
	Title string `json:"title,omitempty"`

	// Tags is an optional set of string labels.
	Tags []string `json:"tags,omitempty"`

	// Metadata is an optional free-form document.
	Metadata map[string]any `json:"metadata,omitempty"`
}
