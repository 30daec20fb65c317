package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/shmoon-kr/gqlauth/internal/domain"
)

// Chain dispatch errors.
var (
	// ErrNoMatch means the backend cannot authenticate the credentials;
	// the chain moves on to the next backend.
	ErrNoMatch = errors.New("credentials not matched")

	// ErrRejected means a backend actively rejected the user; the chain
	// stops immediately without consulting further backends.
	ErrRejected = errors.New("rejected by backend")
)

// Backend authenticates an identifier/password pair against one credential
// source. Implementations return ErrNoMatch when the credentials are simply
// not theirs to verify and ErrRejected to veto the login outright.
type Backend interface {
	Authenticate(ctx context.Context, identifier, password string) (*domain.User, error)
}

// Chain tries each backend in order until one succeeds.
type Chain struct {
	backends []Backend
}

// NewChain creates a backend chain. Order matters: the first backend to
// return a user wins.
func NewChain(backends ...Backend) *Chain {
	return &Chain{backends: backends}
}

// Authenticate dispatches to the configured backends.
// Returns ErrNoMatch when every backend passed, ErrRejected when one vetoed.
func (c *Chain) Authenticate(ctx context.Context, identifier, password string) (*domain.User, error) {
	for _, b := range c.backends {
		user, err := b.Authenticate(ctx, identifier, password)
		if err != nil {
			if errors.Is(err, ErrNoMatch) {
				continue
			}
			return nil, err
		}
		return user, nil
	}
	return nil, ErrNoMatch
}

// userGetter is the user lookup needed by PasswordBackend.
type userGetter interface {
	GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
}

// PasswordBackend verifies a bcrypt password hash stored on the user row.
// The identifier matches either email or username (repo decides).
type PasswordBackend struct {
	users userGetter
}

// NewPasswordBackend creates the default password backend.
func NewPasswordBackend(users userGetter) *PasswordBackend {
	return &PasswordBackend{users: users}
}

// Authenticate looks up the user and compares the password hash.
// An unknown identifier and a wrong password are indistinguishable: both
// return ErrNoMatch.
func (b *PasswordBackend) Authenticate(ctx context.Context, identifier, password string) (*domain.User, error) {
	user, err := b.users.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrNoMatch
		}
		return nil, fmt.Errorf("password backend: %w", err)
	}

	if user.PasswordHash == nil {
		return nil, ErrNoMatch
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrNoMatch
	}

	return user, nil
}
