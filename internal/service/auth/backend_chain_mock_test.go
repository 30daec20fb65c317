package auth

import (
	"context"
	"sync"

	"github.com/shmoon-kr/gqlauth/internal/domain"
)

var _ backendChain = &backendChainMock{}

type backendChainMock struct {
	AuthenticateFunc func(ctx context.Context, identifier, password string) (*domain.User, error)

	calls struct {
		Authenticate []struct {
			Ctx        context.Context
			Identifier string
			Password   string
		}
	}
	lockAuthenticate sync.RWMutex
}

func (mock *backendChainMock) Authenticate(ctx context.Context, identifier, password string) (*domain.User, error) {
	if mock.AuthenticateFunc == nil {
		panic("backendChainMock.AuthenticateFunc: method is nil but backendChain.Authenticate was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Identifier string
		Password   string
	}{Ctx: ctx, Identifier: identifier, Password: password}
	mock.lockAuthenticate.Lock()
	mock.calls.Authenticate = append(mock.calls.Authenticate, callInfo)
	mock.lockAuthenticate.Unlock()
	return mock.AuthenticateFunc(ctx, identifier, password)
}

func (mock *backendChainMock) AuthenticateCalls() []struct {
	Ctx        context.Context
	Identifier string
	Password   string
} {
	mock.lockAuthenticate.RLock()
	calls := mock.calls.Authenticate
	mock.lockAuthenticate.RUnlock()
	return calls
}
