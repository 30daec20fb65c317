package token_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shmoon-kr/gqlauth/internal/adapter/postgres/testhelper"
	"github.com/shmoon-kr/gqlauth/internal/adapter/postgres/token"
	"github.com/shmoon-kr/gqlauth/internal/domain"
)

// newRepo is a test helper that sets up the DB and returns a ready Repo.
func newRepo(t *testing.T) (*token.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return token.New(pool), pool
}

// ---------------------------------------------------------------------------
// Create / GetByHash
// ---------------------------------------------------------------------------

func TestRepo_Create_HappyPath(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	u := testhelper.SeedUser(t, pool)
	expiresAt := time.Now().UTC().Add(time.Hour).Truncate(time.Microsecond)

	got, err := repo.Create(ctx, &domain.RefreshToken{
		UserID:    u.ID,
		TokenHash: "hash-create-" + uuid.New().String()[:8],
		ExpiresAt: expiresAt,
	})
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if got.ID == uuid.Nil {
		t.Error("expected DB-generated ID")
	}
	if got.UserID != u.ID {
		t.Errorf("UserID mismatch: got %s, want %s", got.UserID, u.ID)
	}
	if !got.ExpiresAt.Equal(expiresAt) {
		t.Errorf("ExpiresAt mismatch: got %v, want %v", got.ExpiresAt, expiresAt)
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected DB-set CreatedAt")
	}
	if got.RevokedAt != nil {
		t.Error("new token should not be revoked")
	}
}

func TestRepo_Create_UnknownUser(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.RefreshToken{
		UserID:    uuid.New(), // no such user
		TokenHash: "hash-fk-" + uuid.New().String()[:8],
		ExpiresAt: time.Now().Add(time.Hour),
	})
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_Create_DuplicateHash(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	u := testhelper.SeedUser(t, pool)
	hash := "hash-dup-" + uuid.New().String()[:8]

	first := &domain.RefreshToken{UserID: u.ID, TokenHash: hash, ExpiresAt: time.Now().Add(time.Hour)}
	if _, err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create first token: %v", err)
	}

	_, err := repo.Create(ctx, &domain.RefreshToken{
		UserID: u.ID, TokenHash: hash, ExpiresAt: time.Now().Add(time.Hour),
	})
	assertIsDomainError(t, err, domain.ErrAlreadyExists)
}

func TestRepo_GetByHash_HappyPath(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	u := testhelper.SeedUser(t, pool)
	seeded := testhelper.SeedRefreshToken(t, pool, u.ID, time.Hour)

	got, err := repo.GetByHash(ctx, seeded.TokenHash)
	if err != nil {
		t.Fatalf("GetByHash: unexpected error: %v", err)
	}
	if got.ID != seeded.ID {
		t.Errorf("ID mismatch: got %s, want %s", got.ID, seeded.ID)
	}
	if got.UserID != u.ID {
		t.Errorf("UserID mismatch: got %s, want %s", got.UserID, u.ID)
	}
}

func TestRepo_GetByHash_ReturnsRevoked(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	u := testhelper.SeedUser(t, pool)
	seeded := testhelper.SeedRefreshToken(t, pool, u.ID, time.Hour)

	if err := repo.RevokeByID(ctx, seeded.ID); err != nil {
		t.Fatalf("RevokeByID: %v", err)
	}

	// Revoked tokens remain findable; the service decides what to do.
	got, err := repo.GetByHash(ctx, seeded.TokenHash)
	if err != nil {
		t.Fatalf("GetByHash after revoke: %v", err)
	}
	if !got.IsRevoked() {
		t.Error("expected revoked token")
	}
}

func TestRepo_GetByHash_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.GetByHash(ctx, "no-such-hash-"+uuid.New().String()[:8])
	assertIsDomainError(t, err, domain.ErrNotFound)
}

// ---------------------------------------------------------------------------
// Revocation
// ---------------------------------------------------------------------------

func TestRepo_RevokeByID_Idempotent(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	u := testhelper.SeedUser(t, pool)
	seeded := testhelper.SeedRefreshToken(t, pool, u.ID, time.Hour)

	if err := repo.RevokeByID(ctx, seeded.ID); err != nil {
		t.Fatalf("RevokeByID: %v", err)
	}

	first, err := repo.GetByHash(ctx, seeded.TokenHash)
	if err != nil {
		t.Fatalf("GetByHash: %v", err)
	}
	if first.RevokedAt == nil {
		t.Fatal("expected revoked_at to be set")
	}

	// Second revoke is a no-op and keeps the original timestamp.
	if err := repo.RevokeByID(ctx, seeded.ID); err != nil {
		t.Fatalf("second RevokeByID: %v", err)
	}
	second, err := repo.GetByHash(ctx, seeded.TokenHash)
	if err != nil {
		t.Fatalf("GetByHash: %v", err)
	}
	if !second.RevokedAt.Equal(*first.RevokedAt) {
		t.Errorf("revoked_at changed on second revoke: %v != %v", second.RevokedAt, first.RevokedAt)
	}
}

func TestRepo_RevokeAllByUser(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	u := testhelper.SeedUser(t, pool)
	other := testhelper.SeedUser(t, pool)

	t1 := testhelper.SeedRefreshToken(t, pool, u.ID, time.Hour)
	t2 := testhelper.SeedRefreshToken(t, pool, u.ID, time.Hour)
	theirs := testhelper.SeedRefreshToken(t, pool, other.ID, time.Hour)

	if err := repo.RevokeAllByUser(ctx, u.ID); err != nil {
		t.Fatalf("RevokeAllByUser: %v", err)
	}

	for _, hash := range []string{t1.TokenHash, t2.TokenHash} {
		got, err := repo.GetByHash(ctx, hash)
		if err != nil {
			t.Fatalf("GetByHash: %v", err)
		}
		if !got.IsRevoked() {
			t.Errorf("token %s should be revoked", got.ID)
		}
	}

	// Other user's token untouched.
	got, err := repo.GetByHash(ctx, theirs.TokenHash)
	if err != nil {
		t.Fatalf("GetByHash: %v", err)
	}
	if got.IsRevoked() {
		t.Error("other user's token should not be revoked")
	}
}

// ---------------------------------------------------------------------------
// DeleteExpired
// ---------------------------------------------------------------------------

func TestRepo_DeleteExpired(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	u := testhelper.SeedUser(t, pool)

	expired := testhelper.SeedRefreshToken(t, pool, u.ID, -time.Hour)
	revoked := testhelper.SeedRefreshToken(t, pool, u.ID, time.Hour)
	active := testhelper.SeedRefreshToken(t, pool, u.ID, time.Hour)

	if err := repo.RevokeByID(ctx, revoked.ID); err != nil {
		t.Fatalf("RevokeByID: %v", err)
	}

	count, err := repo.DeleteExpired(ctx)
	if err != nil {
		t.Fatalf("DeleteExpired: unexpected error: %v", err)
	}
	// Other parallel tests may add deletable rows; at least ours must go.
	if count < 2 {
		t.Errorf("expected at least 2 deleted tokens, got %d", count)
	}

	for _, hash := range []string{expired.TokenHash, revoked.TokenHash} {
		if _, err := repo.GetByHash(ctx, hash); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("token %s should be deleted, got err=%v", hash, err)
		}
	}

	if _, err := repo.GetByHash(ctx, active.TokenHash); err != nil {
		t.Errorf("active token should survive cleanup: %v", err)
	}
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestRepo_List_ByUser(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	u := testhelper.SeedUser(t, pool)
	other := testhelper.SeedUser(t, pool)

	t1 := testhelper.SeedRefreshToken(t, pool, u.ID, time.Hour)
	t2 := testhelper.SeedRefreshToken(t, pool, u.ID, 2*time.Hour)
	testhelper.SeedRefreshToken(t, pool, other.ID, time.Hour)

	got, err := repo.List(ctx, token.Filter{UserID: &u.ID})
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(got))
	}
	found := map[uuid.UUID]bool{}
	for _, tok := range got {
		if tok.UserID != u.ID {
			t.Errorf("foreign token in listing: %s", tok.ID)
		}
		found[tok.ID] = true
	}
	if !found[t1.ID] || !found[t2.ID] {
		t.Errorf("expected both seeded tokens, got %v", found)
	}
}

func TestRepo_List_RevokedFilter(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	u := testhelper.SeedUser(t, pool)
	active := testhelper.SeedRefreshToken(t, pool, u.ID, time.Hour)
	revoked := testhelper.SeedRefreshToken(t, pool, u.ID, time.Hour)
	if err := repo.RevokeByID(ctx, revoked.ID); err != nil {
		t.Fatalf("RevokeByID: %v", err)
	}

	revokedOnly := true
	got, err := repo.List(ctx, token.Filter{UserID: &u.ID, Revoked: &revokedOnly})
	if err != nil {
		t.Fatalf("List(revoked): %v", err)
	}
	if len(got) != 1 || got[0].ID != revoked.ID {
		t.Fatalf("expected only the revoked token, got %v", got)
	}

	activeOnly := false
	got, err = repo.List(ctx, token.Filter{UserID: &u.ID, Revoked: &activeOnly})
	if err != nil {
		t.Fatalf("List(active): %v", err)
	}
	if len(got) != 1 || got[0].ID != active.ID {
		t.Fatalf("expected only the active token, got %v", got)
	}
}

func TestRepo_List_LimitOffset(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	u := testhelper.SeedUser(t, pool)
	for i := 0; i < 3; i++ {
		testhelper.SeedRefreshToken(t, pool, u.ID, time.Hour)
	}

	page1, err := repo.List(ctx, token.Filter{UserID: &u.ID, Limit: 2})
	if err != nil {
		t.Fatalf("List page1: %v", err)
	}
	if len(page1) != 2 {
		t.Fatalf("expected 2 tokens on page 1, got %d", len(page1))
	}

	page2, err := repo.List(ctx, token.Filter{UserID: &u.ID, Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("List page2: %v", err)
	}
	if len(page2) != 1 {
		t.Fatalf("expected 1 token on page 2, got %d", len(page2))
	}
}

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

func assertIsDomainError(t *testing.T, err error, target error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error wrapping %v, got nil", target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("expected error wrapping %v, got: %v", target, err)
	}
}
