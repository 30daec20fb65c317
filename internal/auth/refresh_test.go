package auth

import (
	"encoding/hex"
	"testing"
)

func TestGenerateRefreshToken(t *testing.T) {
	t.Parallel()

	raw, hash, err := GenerateRefreshToken()
	if err != nil {
		t.Fatalf("GenerateRefreshToken: unexpected error: %v", err)
	}

	if raw == "" {
		t.Fatal("raw token should not be empty")
	}
	if raw == hash {
		t.Error("raw token must not equal its hash")
	}
	if hash != HashToken(raw) {
		t.Error("returned hash should match HashToken(raw)")
	}

	// SHA-256 hex is 64 characters.
	if len(hash) != 64 {
		t.Errorf("expected 64-char hex hash, got %d chars", len(hash))
	}
	if _, err := hex.DecodeString(hash); err != nil {
		t.Errorf("hash should be valid hex: %v", err)
	}
}

func TestGenerateRefreshToken_Unique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		raw, _, err := GenerateRefreshToken()
		if err != nil {
			t.Fatalf("GenerateRefreshToken: %v", err)
		}
		if seen[raw] {
			t.Fatal("duplicate refresh token generated")
		}
		seen[raw] = true
	}
}

func TestHashToken_Deterministic(t *testing.T) {
	t.Parallel()

	if HashToken("abc") != HashToken("abc") {
		t.Error("HashToken should be deterministic")
	}
	if HashToken("abc") == HashToken("abd") {
		t.Error("different inputs should produce different hashes")
	}
}
