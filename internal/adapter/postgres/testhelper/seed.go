package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shmoon-kr/gqlauth/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a verified user with its status row and returns it.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	hash := "$2a$04$seedhashseedhashseedhashseedhash"
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Username:     "testuser-" + suffix,
		PasswordHash: &hash,
		Status: domain.UserStatus{
			Verified: true,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	user.Status.UserID = user.ID
	user.Status.UpdatedAt = now

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Username, *user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO user_status (user_id, verified, archived, updated_at)
		 VALUES ($1, $2, $3, $4)`,
		user.ID, user.Status.Verified, user.Status.Archived, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert status: %v", err)
	}

	return user
}

// SeedRefreshToken inserts a refresh token for the user expiring in the
// given duration (negative for an already-expired token) and returns it.
func SeedRefreshToken(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, ttl time.Duration) domain.RefreshToken {
	t.Helper()
	ctx := context.Background()

	token := domain.RefreshToken{
		UserID:    userID,
		TokenHash: "hash-" + uniqueSuffix(),
		ExpiresAt: time.Now().UTC().Add(ttl).Truncate(time.Microsecond),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO refresh_tokens (user_id, token_hash, expires_at)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		token.UserID, token.TokenHash, token.ExpiresAt,
	).Scan(&token.ID, &token.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedRefreshToken insert: %v", err)
	}

	return token
}
