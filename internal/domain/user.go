package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an application account together with its status row.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash *string
	Status       UserStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanLogin reports whether the user passes the verified-gate.
// Unverified users may log in only when the service allows it.
func (u *User) CanLogin(allowNotVerified bool) bool {
	return u.Status.Verified || allowNotVerified
}

// UserStatus holds the verification and archival flags for a user.
// A status row is created together with the user and never deleted.
type UserStatus struct {
	UserID    uuid.UUID
	Verified  bool
	Archived  bool
	UpdatedAt time.Time
}
