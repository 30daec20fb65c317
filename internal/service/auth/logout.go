package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/shmoon-kr/gqlauth/internal/domain"
	"github.com/shmoon-kr/gqlauth/pkg/ctxutil"
)

// Logout revokes all refresh tokens of the authenticated user.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) Logout(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", userID.String()))
	return nil
}

// ValidateToken decodes an access token for the HTTP middleware and returns
// the subject user ID. Returns ErrUnauthorized on any decode failure; the
// middleware does not distinguish expired from malformed.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	payload, err := s.codec.Decode(token)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return payload.Sub, nil
}

// Me returns the authenticated user.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Me: %w", err)
	}

	return user, nil
}

// CleanupExpiredTokens removes expired and revoked refresh tokens from the
// database. Returns the number of rows deleted. Maintenance operation, run
// from the cleanup-tokens command.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int, error) {
	count, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired tokens", slog.Int("count", count))
	}

	return count, nil
}
