// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, API key
// generation and hashing, HTTP response writing, JWT token issuance
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/coladapo/puo-memo-platform/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user's identifier
// in the context. Set by the bearer-token middleware after a successful
// token validation.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, "5b2e…")
var UserIDCtxKey = contextKey("userID")

// KeyAuthCtxKey is the key used to store the [models.KeyAuth] produced by a
// successful API key validation. Set by the API-key middleware.
var KeyAuthCtxKey = contextKey("keyAuth")

// GetUserIDFromContext retrieves the authenticated user's identifier from
// the context.
//
// Returns the user ID and an ok flag:
//   - ok == true  — value is found and has the correct string type
//   - ok == false — value is missing or has an unexpected type
//
// Example usage:
//
//	userID, ok := utils.GetUserIDFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok
}

// GetKeyAuthFromContext retrieves the API key authentication context.
//
// Returns the [models.KeyAuth] and an ok flag reporting whether the value
// was present and correctly typed.
func GetKeyAuthFromContext(ctx context.Context) (models.KeyAuth, bool) {
	auth, ok := ctx.Value(KeyAuthCtxKey).(models.KeyAuth)
	return auth, ok
}
