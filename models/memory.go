package models

import "time"

// Memory is a single stored memory entity owned by a user.
//
// Tags and Metadata are persisted as JSONB documents; the store layer decodes
// them at the persistence boundary so the rest of the application never
// handles raw JSON.
type Memory struct {
	// ID is the unique identifier of the memory, assigned by the database.
	ID string `json:"id"`

	// UserID is the identifier of the owning user. Every query against the
	// memories table is scoped by this field.
	UserID string `json:"user_id"`

	// Content is the free-form text body of the memory.
	Content string `json:"content"`

	// Title is an optional short label. When empty at creation time it
	// defaults to the first 100 characters of Content.
	Title string `json:"title,omitempty"`

	// Tags is the set of string labels attached to the memory.
	Tags []string `json:"tags"`

	// Metadata is a free-form document attached by the caller.
	Metadata map[string]any `json:"metadata"`

	// CreatedAt is the timestamp when the memory was stored.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Memory model.
func (m Memory) TableName() string {
	return "memories"
}

// UsageLog records a single handled API request for billing and analytics.
type UsageLog struct {
	UserID         string    `json:"user_id"`
	Endpoint       string    `json:"endpoint"`
	Method         string    `json:"method"`
	StatusCode     int       `json:"status_code"`
	ResponseTimeMS int       `json:"response_time_ms"`
	IPAddress      string    `json:"ip_address"`
	UserAgent      string    `json:"user_agent"`
	CreatedAt      time.Time `json:"created_at"`
}
