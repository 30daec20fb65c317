package resolver

import (
	"context"
	"log/slog"

	"github.com/shmoon-kr/gqlauth/internal/adapter/postgres/token"
	"github.com/shmoon-kr/gqlauth/internal/domain"
	auth "github.com/shmoon-kr/gqlauth/internal/service/auth"
	"github.com/shmoon-kr/gqlauth/internal/transport/graphql/generated"
)

// authService defines what the resolver needs from the auth service.
type authService interface {
	ObtainToken(ctx context.Context, input auth.ObtainTokenInput) (*auth.AuthResult, error)
	VerifyToken(ctx context.Context, token string) (*auth.VerifyResult, error)
	Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
	RevokeRefreshToken(ctx context.Context, input auth.RevokeInput) (*domain.RefreshToken, error)
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	Logout(ctx context.Context) error
	ArchiveAccount(ctx context.Context) error
	Me(ctx context.Context) (*domain.User, error)
}

// tokenLister lists refresh tokens. The resolver goes to the repo directly;
// listing is a read with no business rules attached.
type tokenLister interface {
	List(ctx context.Context, f token.Filter) ([]domain.RefreshToken, error)
}

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	auth   authService
	tokens tokenLister
	log    *slog.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(log *slog.Logger, auth authService, tokens tokenLister) *Resolver {
	return &Resolver{
		auth:   auth,
		tokens: tokens,
		log:    log.With("component", "graphql"),
	}
}

// Mutation returns the mutation resolver root.
func (r *Resolver) Mutation() generated.MutationResolver { return &mutationResolver{r} }

// Query returns the query resolver root.
func (r *Resolver) Query() generated.QueryResolver { return &queryResolver{r} }

// RefreshToken returns the field resolver root for RefreshToken.
func (r *Resolver) RefreshToken() generated.RefreshTokenResolver { return &refreshTokenResolver{r} }

type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
type refreshTokenResolver struct{ *Resolver }
