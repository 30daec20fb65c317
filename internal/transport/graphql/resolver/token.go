package resolver

import (
	"context"

	"github.com/shmoon-kr/gqlauth/internal/transport/graphql/dataloader"
	"github.com/shmoon-kr/gqlauth/internal/transport/graphql/model"
)

// User resolves the owning user of a refresh token through the per-request
// dataloader, so listing N tokens costs one user query.
func (r *refreshTokenResolver) User(ctx context.Context, obj *model.RefreshToken) (*model.User, error) {
	user, err := dataloader.FromContext(ctx).UserByID.Load(ctx, obj.UserID)()
	if err != nil {
		return nil, err
	}
	return toUser(user), nil
}
