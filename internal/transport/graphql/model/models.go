// Package model holds the GraphQL object types. They are bound to the
// schema via gqlgen.yml instead of being generated, so extra fields used
// only by field resolvers (RefreshToken.UserID) can live next to the
// schema-visible ones.
package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Verified  bool      `json:"verified"`
	Archived  bool      `json:"archived"`
	CreatedAt time.Time `json:"createdAt"`
}

type TokenPayload struct {
	Sub     uuid.UUID `json:"sub"`
	OrigIat time.Time `json:"origIat"`
	Exp     time.Time `json:"exp"`
}

type Token struct {
	Token   string        `json:"token"`
	Payload *TokenPayload `json:"payload"`
}

type RefreshToken struct {
	ID        uuid.UUID  `json:"id"`
	ExpiresAt time.Time  `json:"expiresAt"`
	CreatedAt time.Time  `json:"createdAt"`
	RevokedAt *time.Time `json:"revokedAt,omitempty"`

	// UserID feeds the user field resolver; not exposed in the schema.
	UserID uuid.UUID `json:"-"`
}

type ExpectedError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ObtainTokenPayload struct {
	Success      bool             `json:"success"`
	Errors       []*ExpectedError `json:"errors,omitempty"`
	Token        *Token           `json:"token,omitempty"`
	RefreshToken *string          `json:"refreshToken,omitempty"`
	User         *User            `json:"user,omitempty"`
}

type VerifyTokenPayload struct {
	Success bool             `json:"success"`
	Errors  []*ExpectedError `json:"errors,omitempty"`
	Payload *TokenPayload    `json:"payload,omitempty"`
	User    *User            `json:"user,omitempty"`
}

type RefreshTokenPayload struct {
	Success      bool             `json:"success"`
	Errors       []*ExpectedError `json:"errors,omitempty"`
	Token        *Token           `json:"token,omitempty"`
	RefreshToken *string          `json:"refreshToken,omitempty"`
}

type RevokeRefreshTokenPayload struct {
	Success   bool             `json:"success"`
	Errors    []*ExpectedError `json:"errors,omitempty"`
	RevokedAt *time.Time       `json:"revokedAt,omitempty"`
}

type RegisterPayload struct {
	Success      bool             `json:"success"`
	Errors       []*ExpectedError `json:"errors,omitempty"`
	Token        *Token           `json:"token,omitempty"`
	RefreshToken *string          `json:"refreshToken,omitempty"`
	User         *User            `json:"user,omitempty"`
}

type LogoutPayload struct {
	Success bool `json:"success"`
}

type ArchiveAccountPayload struct {
	Success bool `json:"success"`
}

type RegisterInput struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}
