package resolver

import (
	"context"

	authsvc "github.com/shmoon-kr/gqlauth/internal/service/auth"
	"github.com/shmoon-kr/gqlauth/internal/transport/graphql/model"
)

// TokenAuth authenticates credentials and returns a token pair.
// Expected auth failures land in the payload errors, not in the GraphQL
// errors array.
func (r *mutationResolver) TokenAuth(ctx context.Context, identifier string, password string) (*model.ObtainTokenPayload, error) {
	result, err := r.auth.ObtainToken(ctx, authsvc.ObtainTokenInput{
		Identifier: identifier,
		Password:   password,
	})
	if err != nil {
		if errs, ok := expectedErrors(err); ok {
			return &model.ObtainTokenPayload{Success: false, Errors: errs}, nil
		}
		return nil, err
	}

	return &model.ObtainTokenPayload{
		Success:      true,
		Token:        toToken(result),
		RefreshToken: &result.RefreshToken,
		User:         toUser(result.User),
	}, nil
}

// VerifyToken decodes an access token and reports whether it is still good.
func (r *mutationResolver) VerifyToken(ctx context.Context, token string) (*model.VerifyTokenPayload, error) {
	result, err := r.auth.VerifyToken(ctx, token)
	if err != nil {
		if errs, ok := expectedErrors(err); ok {
			return &model.VerifyTokenPayload{Success: false, Errors: errs}, nil
		}
		return nil, err
	}

	return &model.VerifyTokenPayload{
		Success: true,
		Payload: toTokenPayload(result.Payload),
		User:    toUser(result.User),
	}, nil
}

// RefreshToken rotates a refresh token into a fresh token pair.
func (r *mutationResolver) RefreshToken(ctx context.Context, refreshToken string) (*model.RefreshTokenPayload, error) {
	result, err := r.auth.Refresh(ctx, authsvc.RefreshInput{RefreshToken: refreshToken})
	if err != nil {
		if errs, ok := expectedErrors(err); ok {
			return &model.RefreshTokenPayload{Success: false, Errors: errs}, nil
		}
		return nil, err
	}

	return &model.RefreshTokenPayload{
		Success:      true,
		Token:        toToken(result),
		RefreshToken: &result.RefreshToken,
	}, nil
}

// RevokeRefreshToken revokes a single refresh token.
func (r *mutationResolver) RevokeRefreshToken(ctx context.Context, refreshToken string) (*model.RevokeRefreshTokenPayload, error) {
	token, err := r.auth.RevokeRefreshToken(ctx, authsvc.RevokeInput{RefreshToken: refreshToken})
	if err != nil {
		if errs, ok := expectedErrors(err); ok {
			return &model.RevokeRefreshTokenPayload{Success: false, Errors: errs}, nil
		}
		return nil, err
	}

	return &model.RevokeRefreshTokenPayload{
		Success:   true,
		RevokedAt: token.RevokedAt,
	}, nil
}

// Register creates a new account. When unverified logins are allowed the
// payload also carries a token pair.
func (r *mutationResolver) Register(ctx context.Context, input model.RegisterInput) (*model.RegisterPayload, error) {
	result, err := r.auth.Register(ctx, authsvc.RegisterInput{
		Email:    input.Email,
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		if errs, ok := expectedErrors(err); ok {
			return &model.RegisterPayload{Success: false, Errors: errs}, nil
		}
		return nil, err
	}

	payload := &model.RegisterPayload{
		Success: true,
		User:    toUser(result.User),
	}
	if result.AccessToken != "" {
		payload.Token = toToken(result)
		payload.RefreshToken = &result.RefreshToken
	}
	return payload, nil
}

// Logout revokes every refresh token of the authenticated user.
func (r *mutationResolver) Logout(ctx context.Context) (*model.LogoutPayload, error) {
	if err := r.auth.Logout(ctx); err != nil {
		return nil, err
	}
	return &model.LogoutPayload{Success: true}, nil
}

// ArchiveAccount archives the authenticated account.
func (r *mutationResolver) ArchiveAccount(ctx context.Context) (*model.ArchiveAccountPayload, error) {
	if err := r.auth.ArchiveAccount(ctx); err != nil {
		return nil, err
	}
	return &model.ArchiveAccountPayload{Success: true}, nil
}
