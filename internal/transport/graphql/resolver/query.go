package resolver

import (
	"context"
	"errors"

	"github.com/shmoon-kr/gqlauth/internal/adapter/postgres/token"
	"github.com/shmoon-kr/gqlauth/internal/domain"
	"github.com/shmoon-kr/gqlauth/internal/transport/graphql/model"
	"github.com/shmoon-kr/gqlauth/pkg/ctxutil"
)

// Me returns the authenticated user, or null for anonymous requests.
func (r *queryResolver) Me(ctx context.Context) (*model.User, error) {
	user, err := r.auth.Me(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, nil
		}
		return nil, err
	}
	return toUser(user), nil
}

// RefreshTokens lists the authenticated user's refresh tokens, newest first.
func (r *queryResolver) RefreshTokens(ctx context.Context, limit *int, offset *int) ([]*model.RefreshToken, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	f := token.Filter{UserID: &userID}
	if limit != nil {
		f.Limit = *limit
	}
	if offset != nil {
		f.Offset = *offset
	}

	tokens, err := r.tokens.List(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]*model.RefreshToken, 0, len(tokens))
	for i := range tokens {
		out = append(out, toRefreshToken(&tokens[i]))
	}
	return out, nil
}
