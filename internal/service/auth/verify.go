package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/shmoon-kr/gqlauth/internal/auth"
	"github.com/shmoon-kr/gqlauth/internal/domain"
)

// VerifyToken decodes an access token and loads the user it points at.
//
// Expected failures: ErrExpiredToken when the token's exp has passed,
// ErrInvalidToken when the token is malformed or its signature does not
// check out, ErrInvalidCredentials when the subject user no longer exists.
func (s *Service) VerifyToken(ctx context.Context, token string) (*VerifyResult, error) {
	if token == "" {
		return nil, domain.NewValidationError("token", "required")
	}

	payload, err := s.codec.Decode(token)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrTokenExpired):
			return nil, domain.ErrExpiredToken
		case errors.Is(err, auth.ErrTokenInvalid):
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("auth.VerifyToken decode: %w", err)
	}

	user, err := s.users.GetByID(ctx, payload.Sub)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Token is formally valid but its subject is gone.
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth.VerifyToken get user: %w", err)
	}

	return &VerifyResult{Payload: payload, User: user}, nil
}
