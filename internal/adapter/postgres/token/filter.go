package token

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// Filter defines parameters for listing refresh tokens.
// Zero value lists everything.
type Filter struct {
	// UserID restricts the listing to one user's tokens.
	UserID *uuid.UUID

	// Revoked filters by revocation state: true for revoked rows only,
	// false for non-revoked only.
	Revoked *bool

	// ExpiredAt filters by expiry relative to the given instant:
	// rows with expires_at before it.
	ExpiredAt *time.Time

	// Limit is the maximum number of rows to return. Default: 100, max: 1000.
	Limit int

	// Offset is the number of rows to skip.
	Offset int
}

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// normalize applies defaults and clamps values.
func (f *Filter) normalize() {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// toSQL builds the SELECT with squirrel ($n placeholders).
func (f *Filter) toSQL() (string, []any, error) {
	b := sq.Select("id", "user_id", "token_hash", "expires_at", "created_at", "revoked_at").
		From("refresh_tokens").
		PlaceholderFormat(sq.Dollar)

	if f.UserID != nil {
		b = b.Where(sq.Eq{"user_id": *f.UserID})
	}
	if f.Revoked != nil {
		if *f.Revoked {
			b = b.Where("revoked_at IS NOT NULL")
		} else {
			b = b.Where("revoked_at IS NULL")
		}
	}
	if f.ExpiredAt != nil {
		b = b.Where(sq.Lt{"expires_at": *f.ExpiredAt})
	}

	return b.OrderBy("created_at DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)).
		ToSql()
}
