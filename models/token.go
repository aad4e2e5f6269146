package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the JWT claim set carried by every issued access token.
//
// It extends the standard registered claims (sub, exp, iat, iss) with the
// user's email so that downstream consumers can identify the account without
// an extra lookup.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Email is the account email of the token subject.
	Email string `json:"email,omitempty"`
}

// Token wraps a JWT access token with convenience accessors for
// authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// UserID is a cached copy of the "sub" (subject) claim. It is populated
// during issuance and after successful validation so that callers never
// re-parse the raw token.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the compact
	// string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID string `json:"-"`

	// Email is the account email extracted from the custom "email" claim.
	Email string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
