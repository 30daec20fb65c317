// Package user implements the User repository using PostgreSQL.
// All queries use raw SQL; every read joins the user_status row so the
// returned domain.User always carries its status.
package user

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/shmoon-kr/gqlauth/internal/adapter/postgres"
	"github.com/shmoon-kr/gqlauth/internal/domain"
)

// Repo provides user and user-status persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const userColumns = `u.id, u.email, u.username, u.password_hash, u.created_at, u.updated_at,
       s.verified, s.archived, s.updated_at`

const selectUserSQL = `
SELECT ` + userColumns + `
FROM users u
JOIN user_status s ON s.user_id = u.id`

const getByIDSQL = selectUserSQL + `
WHERE u.id = $1`

const getByEmailSQL = selectUserSQL + `
WHERE u.email = $1`

const getByUsernameSQL = selectUserSQL + `
WHERE u.username = $1`

const getByIdentifierSQL = selectUserSQL + `
WHERE u.email = $1 OR u.username = $1`

const createUserSQL = `
INSERT INTO users (id, email, username, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)`

const createStatusSQL = `
INSERT INTO user_status (user_id, verified, archived)
VALUES ($1, $2, $3)`

const setVerifiedSQL = `
UPDATE user_status
SET verified = $2, updated_at = now()
WHERE user_id = $1`

const setArchivedSQL = `
UPDATE user_status
SET archived = $2, updated_at = now()
WHERE user_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	return r.scanOne(q.QueryRow(ctx, getByIDSQL, id))
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	return r.scanOne(q.QueryRow(ctx, getByEmailSQL, email))
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	return r.scanOne(q.QueryRow(ctx, getByUsernameSQL, username))
}

// GetByIdentifier returns a user whose email or username matches the
// identifier. Used by the password backend.
func (r *Repo) GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	return r.scanOne(q.QueryRow(ctx, getByIdentifierSQL, identifier))
}

// GetByIDs returns users for the given set of ids, in no particular order.
// Missing ids are silently skipped; callers map by ID.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, selectUserSQL+` WHERE u.id = ANY($1)`, ids)
	if err != nil {
		return nil, postgres.MapError(err, "user")
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, postgres.MapError(err, "user")
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "user")
	}

	return users, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user together with its status row.
// The caller is expected to run this inside a transaction when combined
// with other writes.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := u.CreatedAt
	if now.IsZero() {
		now = time.Now()
	}

	if _, err := q.Exec(ctx, createUserSQL,
		u.ID, u.Email, u.Username, ptrStringToPgText(u.PasswordHash), now,
	); err != nil {
		return nil, postgres.MapError(err, "user")
	}

	if _, err := q.Exec(ctx, createStatusSQL,
		u.ID, u.Status.Verified, u.Status.Archived,
	); err != nil {
		return nil, postgres.MapError(err, "user_status")
	}

	return r.GetByID(ctx, u.ID)
}

// SetVerified updates the verified flag on the status row.
func (r *Repo) SetVerified(ctx context.Context, userID uuid.UUID, verified bool) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setVerifiedSQL, userID, verified)
	if err != nil {
		return postgres.MapError(err, "user_status")
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user_status")
	}

	return nil
}

// SetArchived updates the archived flag on the status row.
func (r *Repo) SetArchived(ctx context.Context, userID uuid.UUID, archived bool) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setArchivedSQL, userID, archived)
	if err != nil {
		return postgres.MapError(err, "user_status")
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user_status")
	}

	return nil
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

func (r *Repo) scanOne(row pgx.Row) (*domain.User, error) {
	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user")
	}
	return &u, nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		u            domain.User
		passwordHash pgtype.Text
	)

	err := row.Scan(
		&u.ID, &u.Email, &u.Username, &passwordHash, &u.CreatedAt, &u.UpdatedAt,
		&u.Status.Verified, &u.Status.Archived, &u.Status.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}

	u.Status.UserID = u.ID
	u.PasswordHash = pgTextToPtr(passwordHash)
	return u, nil
}

// pgTextToPtr returns a *string (nil when NULL).
func pgTextToPtr(t pgtype.Text) *string {
	if t.Valid {
		return &t.String
	}
	return nil
}

// ptrStringToPgText converts a *string to pgtype.Text (nil → NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
