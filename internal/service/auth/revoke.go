package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shmoon-kr/gqlauth/internal/auth"
	"github.com/shmoon-kr/gqlauth/internal/domain"
)

// RevokeRefreshToken revokes a single refresh token and returns the updated
// record. Revoking an already-revoked token succeeds (idempotent).
//
// Expected failures: ErrInvalidToken when the token is unknown.
func (s *Service) RevokeRefreshToken(ctx context.Context, input RevokeInput) (*domain.RefreshToken, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Look up by hash
	hash := auth.HashToken(input.RefreshToken)

	token, err := s.tokens.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("auth.RevokeRefreshToken get token: %w", err)
	}

	// Step 3: Revoke. The repo keeps the first revoked_at on repeat calls.
	if !token.IsRevoked() {
		if err := s.tokens.RevokeByID(ctx, token.ID); err != nil {
			return nil, fmt.Errorf("auth.RevokeRefreshToken revoke: %w", err)
		}

		now := time.Now()
		token.RevokedAt = &now

		s.log.InfoContext(ctx, "refresh token revoked",
			slog.String("user_id", token.UserID.String()))
	}

	return token, nil
}
