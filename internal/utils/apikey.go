package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// apiKeyRandomBytes is the entropy budget of a generated API key.
// 32 random bytes give 256 bits of entropy, which is why the key hash may be
// a fast digest rather than a slow password hash.
const apiKeyRandomBytes = 32

// GenerateAPIKey creates a new API key credential.
//
// The full key is prefix + hex(32 random bytes). Alongside the key itself,
// the function returns the hex-encoded SHA-256 digest of the full key (the
// only form that is ever persisted) and the last four characters of the key
// (kept for user-facing identification in listing UIs).
//
// Parameters:
//
//	prefix - non-secret prefix the key starts with (e.g. "puo_memo_key_")
//
// Returns:
//
//	key    - the full plaintext key; revealed to the caller exactly once
//	hash   - hex-encoded SHA-256 digest of key
//	suffix - last four characters of key
//	error  - non-nil if the system's entropy source fails
func GenerateAPIKey(prefix string) (key, hash, suffix string, err error) {
	raw := make([]byte, apiKeyRandomBytes)
	if _, err = rand.Read(raw); err != nil {
		return "", "", "", fmt.Errorf("error reading random bytes for API key: %w", err)
	}

	key = prefix + hex.EncodeToString(raw)
	hash = HashAPIKey(key)
	suffix = key[len(key)-4:]

	return key, hash, suffix, nil
}

// HashAPIKey computes the hex-encoded SHA-256 digest of a presented API key
// string. Keys are compared by this digest, never by plaintext.
func HashAPIKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// RandomHex returns n random bytes as a hex string. Used to generate an
// ephemeral token sign key at startup when none is configured.
func RandomHex(n int) (string, error) {
	raw := make([]byte, n)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}
	return hex.EncodeToString(raw), nil
}
