package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shmoon-kr/gqlauth/internal/auth"
	"github.com/shmoon-kr/gqlauth/internal/domain"
)

// ObtainToken authenticates credentials through the backend chain and issues
// a token pair.
//
// Expected failures: ErrInvalidCredentials when no backend matched,
// ErrUnauthenticated when a backend vetoed the user, ErrNotVerified when the
// account is unverified and unverified logins are disabled.
//
// An archived account is un-archived by a successful login. This happens
// before the verified-gate so an archived-and-unverified user still gets
// restored even when the login itself is then refused.
func (s *Service) ObtainToken(ctx context.Context, input ObtainTokenInput) (*AuthResult, error) {
	// Normalize input before validation.
	input.Identifier = strings.TrimSpace(input.Identifier)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Run the backend chain
	user, err := s.backends.Authenticate(ctx, input.Identifier, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrNoMatch):
			return nil, domain.ErrInvalidCredentials
		case errors.Is(err, auth.ErrRejected):
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("auth.ObtainToken authenticate: %w", err)
	}

	// Step 3: Un-archive on login
	if user.Status.Archived {
		if err := s.users.SetArchived(ctx, user.ID, false); err != nil {
			return nil, fmt.Errorf("auth.ObtainToken unarchive: %w", err)
		}
		user.Status.Archived = false

		s.log.InfoContext(ctx, "archived account restored by login",
			slog.String("user_id", user.ID.String()))
	}

	// Step 4: Verified gate
	if !user.CanLogin(s.cfg.AllowLoginNotVerified) {
		return nil, domain.ErrNotVerified
	}

	// Step 5: Issue tokens
	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.ObtainToken issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "token pair issued",
		slog.String("user_id", user.ID.String()))

	return result, nil
}
