package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestAsExpected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err      error
		wantCode string
		wantOK   bool
	}{
		{ErrInvalidCredentials, "invalid_credentials", true},
		{ErrNotVerified, "not_verified", true},
		{ErrUnauthenticated, "unauthenticated", true},
		{ErrExpiredToken, "expired_token", true},
		{ErrInvalidToken, "invalid_token", true},
		{fmt.Errorf("refresh: %w", ErrInvalidToken), "invalid_token", true},
		{ErrNotFound, "", false},
		{errors.New("boom"), "", false},
	}

	for _, tt := range tests {
		got, ok := AsExpected(tt.err)
		if ok != tt.wantOK {
			t.Errorf("AsExpected(%v) ok = %v, want %v", tt.err, ok, tt.wantOK)
			continue
		}
		if got.Code != tt.wantCode {
			t.Errorf("AsExpected(%v) code = %q, want %q", tt.err, got.Code, tt.wantCode)
		}
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	t.Parallel()

	err := NewValidationError("password", "required")
	if !errors.Is(err, ErrValidation) {
		t.Error("ValidationError must unwrap to ErrValidation")
	}
	if err.Error() != "validation: password: required" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}
