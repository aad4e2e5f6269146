package models

import "time"

// APIKey represents a long-lived programmatic credential owned by a user.
//
// Only the SHA-256 hash of the full key is ever persisted. KeyPrefix and
// KeySuffix are non-secret display fragments that let a user recognise a key
// in listing UIs without the secret body being recoverable.
type APIKey struct {
	// ID is the unique identifier of the key record.
	ID string `json:"id"`

	// UserID is the identifier of the owning user.
	UserID string `json:"user_id"`

	// KeyHash is the hex-encoded SHA-256 digest of the full key string.
	// Never serialized; comparison is always by hash, never plaintext.
	KeyHash string `json:"-"`

	// KeyPrefix is the fixed, non-secret prefix the full key starts with.
	KeyPrefix string `json:"key_prefix"`

	// KeySuffix is the last four characters of the full key, kept for
	// user-facing identification only.
	KeySuffix string `json:"key_suffix"`

	// Name is the human-readable label of the key.
	Name string `json:"name"`

	// ExpiresAt is the optional expiry of the key. Zero value means the key
	// never expires.
	ExpiresAt time.Time `json:"expires_at,omitzero"`

	// RateLimitPerMinute is the per-minute request budget attached to the key.
	RateLimitPerMinute int `json:"rate_limit_per_minute"`

	// RateLimitPerHour is the per-hour request budget attached to the key.
	RateLimitPerHour int `json:"rate_limit_per_hour"`

	// IsActive reports whether the key may authenticate. Keys are never
	// physically deleted; revocation clears this flag.
	IsActive bool `json:"is_active"`

	// LastUsedAt is the timestamp of the most recent successful validation.
	LastUsedAt time.Time `json:"last_used_at,omitzero"`

	// CreatedAt is the timestamp when the key was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the APIKey model.
func (k APIKey) TableName() string {
	return "api_keys"
}

// APIKeyCreated is the result of creating a new API key.
//
// Key carries the full plaintext secret and is populated exactly once, at
// creation time. It cannot be retrieved again through any listing call.
type APIKeyCreated struct {
	APIKey

	// Key is the full plaintext key. Shown to the caller once and never
	// persisted.
	Key string `json:"key"`
}

// KeyAuth is the authentication context produced by a successful API key
// validation. It identifies the owning user and the effective rate limits of
// the presented key.
type KeyAuth struct {
	// UserID is the identifier of the key's owner.
	UserID string `json:"user_id"`

	// User is the owning user record.
	User User `json:"user"`

	// APIKeyID is the identifier of the validated key record.
	APIKeyID string `json:"api_key_id"`

	// RateLimitPerMinute is the per-minute budget of the validated key.
	RateLimitPerMinute int `json:"rate_limit_per_minute"`

	// RateLimitPerHour is the per-hour budget of the validated key.
	RateLimitPerHour int `json:"rate_limit_per_hour"`
}
