package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/shmoon-kr/gqlauth/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	CreateFunc      func(ctx context.Context, user *domain.User) (*domain.User, error)
	SetVerifiedFunc func(ctx context.Context, userID uuid.UUID, verified bool) error
	SetArchivedFunc func(ctx context.Context, userID uuid.UUID, archived bool) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Create []struct {
			Ctx  context.Context
			User *domain.User
		}
		SetVerified []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			Verified bool
		}
		SetArchived []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			Archived bool
		}
	}
	lockGetByID     sync.RWMutex
	lockCreate      sync.RWMutex
	lockSetVerified sync.RWMutex
	lockSetArchived sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
	}{Ctx: ctx, User: user}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	User *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) SetVerified(ctx context.Context, userID uuid.UUID, verified bool) error {
	if mock.SetVerifiedFunc == nil {
		panic("userRepoMock.SetVerifiedFunc: method is nil but userRepo.SetVerified was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		Verified bool
	}{Ctx: ctx, UserID: userID, Verified: verified}
	mock.lockSetVerified.Lock()
	mock.calls.SetVerified = append(mock.calls.SetVerified, callInfo)
	mock.lockSetVerified.Unlock()
	return mock.SetVerifiedFunc(ctx, userID, verified)
}

func (mock *userRepoMock) SetVerifiedCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	Verified bool
} {
	mock.lockSetVerified.RLock()
	calls := mock.calls.SetVerified
	mock.lockSetVerified.RUnlock()
	return calls
}

func (mock *userRepoMock) SetArchived(ctx context.Context, userID uuid.UUID, archived bool) error {
	if mock.SetArchivedFunc == nil {
		panic("userRepoMock.SetArchivedFunc: method is nil but userRepo.SetArchived was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		Archived bool
	}{Ctx: ctx, UserID: userID, Archived: archived}
	mock.lockSetArchived.Lock()
	mock.calls.SetArchived = append(mock.calls.SetArchived, callInfo)
	mock.lockSetArchived.Unlock()
	return mock.SetArchivedFunc(ctx, userID, archived)
}

func (mock *userRepoMock) SetArchivedCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	Archived bool
} {
	mock.lockSetArchived.RLock()
	calls := mock.calls.SetArchived
	mock.lockSetArchived.RUnlock()
	return calls
}
