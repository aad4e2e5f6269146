package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes, credential data, and usage counters.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user, assigned by the database.
	ID string `json:"id"`

	// Email is the unique login identifier of the account.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never serialized and MUST never contain plaintext.
	PasswordHash string `json:"-"`

	// FullName is the optional display name of the user.
	// It is non-sensitive and may be shown in UI.
	FullName string `json:"full_name,omitempty"`

	// IsActive reports whether the account may authenticate.
	// Deactivated accounts are rejected at login and key validation.
	IsActive bool `json:"is_active"`

	// SubscriptionTier is the billing plan of the account
	// ("free", "pro", "enterprise"). It controls the monthly memory quota.
	SubscriptionTier string `json:"subscription_tier"`

	// MemoryCount is the total number of memories ever stored by the user.
	MemoryCount int `json:"memory_count"`

	// MonthlyMemoryCount is the number of memories stored in the current
	// calendar month. Reset by the monthly usage worker.
	MonthlyMemoryCount int `json:"monthly_memory_count"`

	// LastLoginAt is the timestamp of the most recent successful login.
	// Zero value means the user has never logged in.
	LastLoginAt time.Time `json:"last_login_at,omitzero"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
