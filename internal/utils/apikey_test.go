package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
)

const testKeyPrefix = "puo_memo_key_"

func TestGenerateAPIKey_Shape(t *testing.T) {
	key, hash, suffix, err := GenerateAPIKey(testKeyPrefix)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(key, testKeyPrefix) {
		t.Errorf("expected key to start with %q, got %q", testKeyPrefix, key)
	}
	// prefix + 32 bytes hex-encoded
	if len(key) != len(testKeyPrefix)+64 {
		t.Errorf("expected key length %d, got %d", len(testKeyPrefix)+64, len(key))
	}
	if suffix != key[len(key)-4:] {
		t.Errorf("expected suffix %q, got %q", key[len(key)-4:], suffix)
	}
	if len(hash) != 64 {
		t.Errorf("expected 64-char hex digest, got %d chars", len(hash))
	}
}

func TestGenerateAPIKey_HashMatchesKey(t *testing.T) {
	key, hash, _, err := GenerateAPIKey(testKeyPrefix)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sum := sha256.Sum256([]byte(key))
	if hash != hex.EncodeToString(sum[:]) {
		t.Error("stored hash does not match SHA-256 of the full key")
	}
	if hash != HashAPIKey(key) {
		t.Error("HashAPIKey disagrees with GenerateAPIKey")
	}
}

func TestGenerateAPIKey_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 32)
	for range 32 {
		key, _, _, err := GenerateAPIKey(testKeyPrefix)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, dup := seen[key]; dup {
			t.Fatal("generated duplicate API key")
		}
		seen[key] = struct{}{}
	}
}

func TestHashAPIKey_Deterministic(t *testing.T) {
	if HashAPIKey("abc") != HashAPIKey("abc") {
		t.Error("expected identical digests for identical input")
	}
	if HashAPIKey("abc") == HashAPIKey("abd") {
		t.Error("expected different digests for different input")
	}
}

func TestRandomHex_Length(t *testing.T) {
	s, err := RandomHex(32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(s))
	}
}
