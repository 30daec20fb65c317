package resolver

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/shmoon-kr/gqlauth/internal/adapter/postgres/token"
	"github.com/shmoon-kr/gqlauth/internal/domain"
	"github.com/shmoon-kr/gqlauth/pkg/ctxutil"
)

type tokenListerMock struct {
	ListFunc func(ctx context.Context, f token.Filter) ([]domain.RefreshToken, error)
}

func (m *tokenListerMock) List(ctx context.Context, f token.Filter) ([]domain.RefreshToken, error) {
	return m.ListFunc(ctx, f)
}

func TestMe_Success(t *testing.T) {
	t.Parallel()

	user := testUser()
	mock := &authServiceMock{
		MeFunc: func(ctx context.Context) (*domain.User, error) { return user, nil },
	}

	resolver := &queryResolver{newTestResolver(mock)}

	result, err := resolver.Me(ctxutil.WithUserID(context.Background(), user.ID))

	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, user.ID, result.ID)
	require.Equal(t, "test@example.com", result.Email)
}

func TestMe_Anonymous(t *testing.T) {
	t.Parallel()

	mock := &authServiceMock{
		MeFunc: func(ctx context.Context) (*domain.User, error) { return nil, domain.ErrUnauthorized },
	}

	resolver := &queryResolver{newTestResolver(mock)}

	result, err := resolver.Me(context.Background())

	// Anonymous me is null, not an error.
	require.NoError(t, err)
	require.Nil(t, result)
}

func TestRefreshTokens_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	rows := []domain.RefreshToken{
		{ID: uuid.New(), UserID: userID, ExpiresAt: time.Now().Add(time.Hour)},
		{ID: uuid.New(), UserID: userID, ExpiresAt: time.Now().Add(2 * time.Hour)},
	}

	lister := &tokenListerMock{
		ListFunc: func(ctx context.Context, f token.Filter) ([]domain.RefreshToken, error) {
			require.NotNil(t, f.UserID)
			require.Equal(t, userID, *f.UserID)
			require.Equal(t, 10, f.Limit)
			return rows, nil
		},
	}

	resolver := &queryResolver{NewResolver(slog.Default(), &authServiceMock{}, lister)}

	limit := 10
	result, err := resolver.RefreshTokens(ctxutil.WithUserID(context.Background(), userID), &limit, nil)

	require.NoError(t, err)
	require.Len(t, result, 2)
	require.Equal(t, rows[0].ID, result[0].ID)
	require.Equal(t, userID, result[0].UserID)
}

func TestRefreshTokens_Unauthenticated(t *testing.T) {
	t.Parallel()

	resolver := &queryResolver{newTestResolver(&authServiceMock{})}

	_, err := resolver.RefreshTokens(context.Background(), nil, nil)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}
