// Package auth implements the token issuance operations: obtain, verify,
// refresh, revoke, plus account registration and status changes.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shmoon-kr/gqlauth/internal/auth"
	"github.com/shmoon-kr/gqlauth/internal/config"
	"github.com/shmoon-kr/gqlauth/internal/domain"
)

// userRepo defines the user repository interface needed by the auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	SetVerified(ctx context.Context, userID uuid.UUID, verified bool) error
	SetArchived(ctx context.Context, userID uuid.UUID, archived bool) error
}

// tokenRepo defines the refresh token repository interface needed by the auth service.
type tokenRepo interface {
	Create(ctx context.Context, token *domain.RefreshToken) (*domain.RefreshToken, error)
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id uuid.UUID) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

// txManager defines the transaction manager interface needed by the auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// backendChain authenticates credentials against the configured backends.
// Returns auth.ErrNoMatch when no backend accepted them and auth.ErrRejected
// when a backend vetoed the login.
type backendChain interface {
	Authenticate(ctx context.Context, identifier, password string) (*domain.User, error)
}

// tokenCodec encodes and decodes access token payloads.
type tokenCodec interface {
	Encode(payload auth.TokenPayload) (string, error)
	Decode(token string) (auth.TokenPayload, error)
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	tokens   tokenRepo
	tx       txManager
	backends backendChain
	codec    tokenCodec
	cfg      config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenRepo,
	tx txManager,
	backends backendChain,
	codec tokenCodec,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		tokens:   tokens,
		tx:       tx,
		backends: backends,
		codec:    codec,
		cfg:      cfg,
	}
}

// issueTokens encodes an access token for the user, stores a new refresh
// token hash in the DB, and returns an AuthResult carrying the raw refresh
// token for the client.
func (s *Service) issueTokens(ctx context.Context, user *domain.User) (*AuthResult, error) {
	payload := auth.NewPayload(user.ID, time.Now(), s.cfg.AccessTokenTTL)

	accessToken, err := s.codec.Encode(payload)
	if err != nil {
		return nil, fmt.Errorf("encode access token: %w", err)
	}

	rawRefresh, hashRefresh, err := auth.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	record, err := s.tokens.Create(ctx, &domain.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashRefresh,
		ExpiresAt: time.Now().Add(s.cfg.RefreshTokenTTL),
	})
	if err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthResult{
		AccessToken:   accessToken,
		Payload:       payload,
		RefreshToken:  rawRefresh,
		RefreshRecord: record,
		User:          user,
	}, nil
}
