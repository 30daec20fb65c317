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

// Refresh performs token rotation: the presented refresh token is revoked
// and a new pair is issued.
//
// Expected failures: ErrInvalidToken when the token is unknown or already
// revoked (a revoked token showing up again means reuse), ErrExpiredToken
// when its expiry has passed.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
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
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	// Step 3: State checks. A revoked token presented again is reuse;
	// revoke the whole family as a precaution.
	if token.IsRevoked() {
		s.log.WarnContext(ctx, "refresh token reuse attempted",
			slog.String("user_id", token.UserID.String()))

		if err := s.tokens.RevokeAllByUser(ctx, token.UserID); err != nil {
			return nil, fmt.Errorf("auth.Refresh revoke family: %w", err)
		}
		return nil, domain.ErrInvalidToken
	}
	if token.IsExpired(time.Now()) {
		return nil, domain.ErrExpiredToken
	}

	// Step 4: Load user
	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deleted user",
				slog.String("user_id", token.UserID.String()))
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	// Step 5: Rotate
	if err := s.tokens.RevokeByID(ctx, token.ID); err != nil {
		return nil, fmt.Errorf("auth.Refresh revoke token: %w", err)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh issue tokens: %w", err)
	}
	return result, nil
}
