package service

import (
	"context"

	"github.com/coladapo/puo-memo-platform/models"
)

// AuthService covers account lifecycle and bearer token authentication.
type AuthService interface {
	// Register creates a user account from the given request and issues the
	// account's default API key in the same call.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, models.APIKeyCreated, error)

	// Login verifies credentials and returns the account. Unknown email and
	// wrong password both surface as [ErrInvalidCredentials].
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken verifies a bearer token and returns its parsed form.
	// Any failure surfaces as [ErrTokenInvalid].
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// UserByID loads the account behind an authenticated request.
	UserByID(ctx context.Context, id string) (models.User, error)
}

// APIKeyService covers issuing, validating and listing API keys.
type APIKeyService interface {
	// Create issues a new key for the user. The returned value carries the
	// plaintext key; it is never stored and never shown again.
	Create(ctx context.Context, userID string, req models.CreateAPIKeyRequest) (models.APIKeyCreated, error)

	// Validate authenticates a presented key and returns the authorization
	// context for the request. Any failure surfaces as [ErrAPIKeyInvalid].
	Validate(ctx context.Context, key string) (models.KeyAuth, error)

	// List returns the user's keys, newest first.
	List(ctx context.Context, userID string) ([]models.APIKey, error)
}

// MemoryService covers memory writes and retrieval.
type MemoryService interface {
	// Create persists a memory for the user, enforcing the monthly quota of
	// the user's subscription tier.
	Create(ctx context.Context, user models.User, req models.CreateMemoryRequest) (models.Memory, error)

	// Search returns the user's memories matching the query, newest first.
	Search(ctx context.Context, userID, query string, limit int) ([]models.Memory, error)
}
