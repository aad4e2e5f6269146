package models

import "time"

// RegisterResponse is the body returned by POST /auth/register.
// APIKey carries the full plaintext key of the auto-created default key;
// this is the only time it is ever revealed.
type RegisterResponse struct {
	Message string        `json:"message"`
	User    User          `json:"user"`
	APIKey  APIKeyCreated `json:"api_key"`
}

// TokenResponse is the body returned by POST /auth/login.
type TokenResponse struct {
	// AccessToken is the compact JWS string of the issued bearer token.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`

	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in"`

	// User is the authenticated user record.
	User User `json:"user"`
}

// ServiceInfo is the body returned by the root endpoint.
type ServiceInfo struct {
	Name     string   `json:"name"`
	Version  string   `json:"version"`
	Status   string   `json:"status"`
	Features []string `json:"features"`
	Signup   string   `json:"signup"`
}

// HealthResponse is the body returned by GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}
