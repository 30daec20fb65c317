package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

const testSecret = "test-secret-at-least-32-chars-long-for-security"

func TestJWTCodec_EncodeDecode_Success(t *testing.T) {
	codec := NewJWTCodec(testSecret, "gqlauth-test")
	userID := uuid.New()

	payload := NewPayload(userID, time.Now(), 15*time.Minute)

	token, err := codec.Encode(payload)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	decoded, err := codec.Decode(token)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.Sub != userID {
		t.Errorf("sub = %s, want %s", decoded.Sub, userID)
	}
	if !decoded.OrigIat.Equal(payload.OrigIat) {
		t.Errorf("origIat = %v, want %v (must survive the round trip)", decoded.OrigIat, payload.OrigIat)
	}
	if !decoded.Exp.Equal(payload.Exp) {
		t.Errorf("exp = %v, want %v", decoded.Exp, payload.Exp)
	}
}

func TestJWTCodec_Decode_Expired(t *testing.T) {
	codec := NewJWTCodec(testSecret, "gqlauth-test")

	payload := NewPayload(uuid.New(), time.Now().Add(-2*time.Hour), time.Hour)
	token, err := codec.Encode(payload)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	_, err = codec.Decode(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got: %v", err)
	}
}

func TestJWTCodec_Decode_WrongSecret(t *testing.T) {
	codec1 := NewJWTCodec(testSecret, "gqlauth-test")
	codec2 := NewJWTCodec("different-secret-32-chars-long-for-security!!", "gqlauth-test")

	token, err := codec1.Encode(NewPayload(uuid.New(), time.Now(), time.Minute))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	_, err = codec2.Decode(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for wrong secret, got: %v", err)
	}
}

func TestJWTCodec_Decode_WrongIssuer(t *testing.T) {
	codec1 := NewJWTCodec(testSecret, "issuer-a")
	codec2 := NewJWTCodec(testSecret, "issuer-b")

	token, err := codec1.Encode(NewPayload(uuid.New(), time.Now(), time.Minute))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	_, err = codec2.Decode(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for wrong issuer, got: %v", err)
	}
}

func TestJWTCodec_Decode_Malformed(t *testing.T) {
	codec := NewJWTCodec(testSecret, "gqlauth-test")

	malformed := []string{
		"",
		"not.a.jwt",
		"invalid-token",
		"header.payload", // missing signature
	}

	for _, token := range malformed {
		if _, err := codec.Decode(token); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("Decode(%q): expected ErrTokenInvalid, got: %v", token, err)
		}
	}
}

func TestNewPayload_ExpIsOrigIatPlusTTL(t *testing.T) {
	now := time.Now()
	p := NewPayload(uuid.New(), now, 10*time.Minute)

	if got := p.Exp.Sub(p.OrigIat); got != 10*time.Minute {
		t.Errorf("exp - origIat = %v, want 10m", got)
	}
	if p.IsExpired(now) {
		t.Error("fresh payload reported expired")
	}
	if !p.IsExpired(now.Add(11 * time.Minute)) {
		t.Error("payload past exp reported not expired")
	}
}
