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

// VerifyAccount marks a user as verified. Verifying an already-verified
// account succeeds. Returns ErrNotFound for an unknown user.
func (s *Service) VerifyAccount(ctx context.Context, userID uuid.UUID) error {
	if err := s.users.SetVerified(ctx, userID, true); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("auth.VerifyAccount: %w", err)
	}

	s.log.InfoContext(ctx, "account verified", slog.String("user_id", userID.String()))
	return nil
}

// ArchiveAccount archives the authenticated user and revokes all their
// refresh tokens in one transaction. The account is restored by the next
// successful login.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) ArchiveAccount(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.SetArchived(txCtx, userID, true); err != nil {
			return fmt.Errorf("archive user: %w", err)
		}
		if err := s.tokens.RevokeAllByUser(txCtx, userID); err != nil {
			return fmt.Errorf("revoke tokens: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("auth.ArchiveAccount: %w", err)
	}

	s.log.InfoContext(ctx, "account archived", slog.String("user_id", userID.String()))
	return nil
}
