package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"
	"github.com/shmoon-kr/gqlauth/internal/domain"
)

// backendFunc adapts a function to the Backend interface.
type backendFunc func(ctx context.Context, identifier, password string) (*domain.User, error)

func (f backendFunc) Authenticate(ctx context.Context, identifier, password string) (*domain.User, error) {
	return f(ctx, identifier, password)
}

func TestChain_FirstMatchWins(t *testing.T) {
	t.Parallel()

	want := &domain.User{ID: uuid.New()}
	calledSecond := false

	chain := NewChain(
		backendFunc(func(ctx context.Context, id, pw string) (*domain.User, error) {
			return want, nil
		}),
		backendFunc(func(ctx context.Context, id, pw string) (*domain.User, error) {
			calledSecond = true
			return nil, ErrNoMatch
		}),
	)

	got, err := chain.Authenticate(context.Background(), "alice", "pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Error("wrong user returned")
	}
	if calledSecond {
		t.Error("chain must stop at the first successful backend")
	}
}

func TestChain_NoMatchFallsThrough(t *testing.T) {
	t.Parallel()

	want := &domain.User{ID: uuid.New()}

	chain := NewChain(
		backendFunc(func(ctx context.Context, id, pw string) (*domain.User, error) {
			return nil, ErrNoMatch
		}),
		backendFunc(func(ctx context.Context, id, pw string) (*domain.User, error) {
			return want, nil
		}),
	)

	got, err := chain.Authenticate(context.Background(), "alice", "pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Error("second backend's user expected")
	}
}

func TestChain_Exhausted(t *testing.T) {
	t.Parallel()

	chain := NewChain(
		backendFunc(func(ctx context.Context, id, pw string) (*domain.User, error) {
			return nil, ErrNoMatch
		}),
	)

	_, err := chain.Authenticate(context.Background(), "alice", "pw")
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got: %v", err)
	}
}

func TestChain_RejectionStopsChain(t *testing.T) {
	t.Parallel()

	calledSecond := false
	chain := NewChain(
		backendFunc(func(ctx context.Context, id, pw string) (*domain.User, error) {
			return nil, ErrRejected
		}),
		backendFunc(func(ctx context.Context, id, pw string) (*domain.User, error) {
			calledSecond = true
			return nil, ErrNoMatch
		}),
	)

	_, err := chain.Authenticate(context.Background(), "alice", "pw")
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("expected ErrRejected, got: %v", err)
	}
	if calledSecond {
		t.Error("rejection must short-circuit the chain")
	}
}

// fakeUserGetter returns a canned user for one identifier.
type fakeUserGetter struct {
	identifier string
	user       *domain.User
}

func (f *fakeUserGetter) GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	if identifier == f.identifier && f.user != nil {
		return f.user, nil
	}
	return nil, domain.ErrNotFound
}

func hashPassword(t *testing.T, password string) *string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashPassword: %v", err)
	}
	s := string(hash)
	return &s
}

func TestPasswordBackend_Success(t *testing.T) {
	t.Parallel()

	user := &domain.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: hashPassword(t, "secret")}
	backend := NewPasswordBackend(&fakeUserGetter{identifier: "alice@example.com", user: user})

	got, err := backend.Authenticate(context.Background(), "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != user.ID {
		t.Error("wrong user returned")
	}
}

func TestPasswordBackend_WrongPasswordAndUnknownUserIndistinguishable(t *testing.T) {
	t.Parallel()

	user := &domain.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: hashPassword(t, "secret")}
	backend := NewPasswordBackend(&fakeUserGetter{identifier: "alice@example.com", user: user})

	_, errWrongPw := backend.Authenticate(context.Background(), "alice@example.com", "nope")
	_, errUnknown := backend.Authenticate(context.Background(), "bob@example.com", "secret")

	if !errors.Is(errWrongPw, ErrNoMatch) {
		t.Errorf("wrong password: expected ErrNoMatch, got: %v", errWrongPw)
	}
	if !errors.Is(errUnknown, ErrNoMatch) {
		t.Errorf("unknown user: expected ErrNoMatch, got: %v", errUnknown)
	}
}

func TestPasswordBackend_NoHashOnRecord(t *testing.T) {
	t.Parallel()

	user := &domain.User{ID: uuid.New(), Email: "alice@example.com"}
	backend := NewPasswordBackend(&fakeUserGetter{identifier: "alice@example.com", user: user})

	_, err := backend.Authenticate(context.Background(), "alice@example.com", "secret")
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch for user without a password hash, got: %v", err)
	}
}
