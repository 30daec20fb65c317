package resolver

import (
	"context"
	"sync"

	"github.com/shmoon-kr/gqlauth/internal/domain"
	auth "github.com/shmoon-kr/gqlauth/internal/service/auth"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	ObtainTokenFunc        func(ctx context.Context, input auth.ObtainTokenInput) (*auth.AuthResult, error)
	VerifyTokenFunc        func(ctx context.Context, token string) (*auth.VerifyResult, error)
	RefreshFunc            func(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
	RevokeRefreshTokenFunc func(ctx context.Context, input auth.RevokeInput) (*domain.RefreshToken, error)
	RegisterFunc           func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	LogoutFunc             func(ctx context.Context) error
	ArchiveAccountFunc     func(ctx context.Context) error
	MeFunc                 func(ctx context.Context) (*domain.User, error)

	calls struct {
		ObtainToken []struct {
			Ctx   context.Context
			Input auth.ObtainTokenInput
		}
		VerifyToken []struct {
			Ctx   context.Context
			Token string
		}
		Refresh []struct {
			Ctx   context.Context
			Input auth.RefreshInput
		}
		RevokeRefreshToken []struct {
			Ctx   context.Context
			Input auth.RevokeInput
		}
		Register []struct {
			Ctx   context.Context
			Input auth.RegisterInput
		}
		Logout         []struct{ Ctx context.Context }
		ArchiveAccount []struct{ Ctx context.Context }
		Me             []struct{ Ctx context.Context }
	}
	mu sync.RWMutex
}

func (mock *authServiceMock) ObtainToken(ctx context.Context, input auth.ObtainTokenInput) (*auth.AuthResult, error) {
	if mock.ObtainTokenFunc == nil {
		panic("authServiceMock.ObtainTokenFunc: method is nil but authService.ObtainToken was just called")
	}
	mock.mu.Lock()
	mock.calls.ObtainToken = append(mock.calls.ObtainToken, struct {
		Ctx   context.Context
		Input auth.ObtainTokenInput
	}{Ctx: ctx, Input: input})
	mock.mu.Unlock()
	return mock.ObtainTokenFunc(ctx, input)
}

func (mock *authServiceMock) VerifyToken(ctx context.Context, token string) (*auth.VerifyResult, error) {
	if mock.VerifyTokenFunc == nil {
		panic("authServiceMock.VerifyTokenFunc: method is nil but authService.VerifyToken was just called")
	}
	mock.mu.Lock()
	mock.calls.VerifyToken = append(mock.calls.VerifyToken, struct {
		Ctx   context.Context
		Token string
	}{Ctx: ctx, Token: token})
	mock.mu.Unlock()
	return mock.VerifyTokenFunc(ctx, token)
}

func (mock *authServiceMock) Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error) {
	if mock.RefreshFunc == nil {
		panic("authServiceMock.RefreshFunc: method is nil but authService.Refresh was just called")
	}
	mock.mu.Lock()
	mock.calls.Refresh = append(mock.calls.Refresh, struct {
		Ctx   context.Context
		Input auth.RefreshInput
	}{Ctx: ctx, Input: input})
	mock.mu.Unlock()
	return mock.RefreshFunc(ctx, input)
}

func (mock *authServiceMock) RevokeRefreshToken(ctx context.Context, input auth.RevokeInput) (*domain.RefreshToken, error) {
	if mock.RevokeRefreshTokenFunc == nil {
		panic("authServiceMock.RevokeRefreshTokenFunc: method is nil but authService.RevokeRefreshToken was just called")
	}
	mock.mu.Lock()
	mock.calls.RevokeRefreshToken = append(mock.calls.RevokeRefreshToken, struct {
		Ctx   context.Context
		Input auth.RevokeInput
	}{Ctx: ctx, Input: input})
	mock.mu.Unlock()
	return mock.RevokeRefreshTokenFunc(ctx, input)
}

func (mock *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	if mock.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but authService.Register was just called")
	}
	mock.mu.Lock()
	mock.calls.Register = append(mock.calls.Register, struct {
		Ctx   context.Context
		Input auth.RegisterInput
	}{Ctx: ctx, Input: input})
	mock.mu.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *authServiceMock) Logout(ctx context.Context) error {
	if mock.LogoutFunc == nil {
		panic("authServiceMock.LogoutFunc: method is nil but authService.Logout was just called")
	}
	mock.mu.Lock()
	mock.calls.Logout = append(mock.calls.Logout, struct{ Ctx context.Context }{Ctx: ctx})
	mock.mu.Unlock()
	return mock.LogoutFunc(ctx)
}

func (mock *authServiceMock) ArchiveAccount(ctx context.Context) error {
	if mock.ArchiveAccountFunc == nil {
		panic("authServiceMock.ArchiveAccountFunc: method is nil but authService.ArchiveAccount was just called")
	}
	mock.mu.Lock()
	mock.calls.ArchiveAccount = append(mock.calls.ArchiveAccount, struct{ Ctx context.Context }{Ctx: ctx})
	mock.mu.Unlock()
	return mock.ArchiveAccountFunc(ctx)
}

func (mock *authServiceMock) Me(ctx context.Context) (*domain.User, error) {
	if mock.MeFunc == nil {
		panic("authServiceMock.MeFunc: method is nil but authService.Me was just called")
	}
	mock.mu.Lock()
	mock.calls.Me = append(mock.calls.Me, struct{ Ctx context.Context }{Ctx: ctx})
	mock.mu.Unlock()
	return mock.MeFunc(ctx)
}
