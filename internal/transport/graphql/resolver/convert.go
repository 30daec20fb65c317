package resolver

import (
	"github.com/shmoon-kr/gqlauth/internal/auth"
	"github.com/shmoon-kr/gqlauth/internal/domain"
	authsvc "github.com/shmoon-kr/gqlauth/internal/service/auth"
	"github.com/shmoon-kr/gqlauth/internal/transport/graphql/model"
)

func toUser(u *domain.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Verified:  u.Status.Verified,
		Archived:  u.Status.Archived,
		CreatedAt: u.CreatedAt,
	}
}

func toTokenPayload(p auth.TokenPayload) *model.TokenPayload {
	return &model.TokenPayload{
		Sub:     p.Sub,
		OrigIat: p.OrigIat,
		Exp:     p.Exp,
	}
}

func toToken(result *authsvc.AuthResult) *model.Token {
	return &model.Token{
		Token:   result.AccessToken,
		Payload: toTokenPayload(result.Payload),
	}
}

func toRefreshToken(t *domain.RefreshToken) *model.RefreshToken {
	if t == nil {
		return nil
	}
	return &model.RefreshToken{
		ID:        t.ID,
		ExpiresAt: t.ExpiresAt,
		CreatedAt: t.CreatedAt,
		RevokedAt: t.RevokedAt,
		UserID:    t.UserID,
	}
}

// expectedErrors folds an expected auth failure into payload errors.
// Returns nil, false for errors outside the catalog.
func expectedErrors(err error) ([]*model.ExpectedError, bool) {
	ee, ok := domain.AsExpected(err)
	if !ok {
		return nil, false
	}
	return []*model.ExpectedError{{Code: ee.Code, Message: ee.Message}}, true
}
