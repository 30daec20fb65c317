// Package auth provides token encoding/decoding and credential backends.
// The token codec and the backend chain are the two injection points of the
// service: swap the codec to change the token format, add backends to accept
// other credential sources.
package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Codec errors. Decode implementations must return these (possibly wrapped)
// so callers can distinguish an expired token from a malformed one.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// TokenPayload is the data a token is built from: the subject user,
// the original issue time (origIat) and the expiry.
type TokenPayload struct {
	Sub     uuid.UUID
	OrigIat time.Time
	Exp     time.Time
}

// IsExpired reports whether the payload's expiry is in the past.
func (p TokenPayload) IsExpired(now time.Time) bool {
	return p.Exp.Before(now)
}

// NewPayload builds a payload for the given user. Exp is origIat + ttl.
// Times are truncated to whole seconds since that is the wire resolution.
func NewPayload(userID uuid.UUID, now time.Time, ttl time.Duration) TokenPayload {
	now = now.UTC().Truncate(time.Second)
	return TokenPayload{
		Sub:     userID,
		OrigIat: now,
		Exp:     now.Add(ttl),
	}
}

// TokenCodec encodes a payload into a bearer token and back.
type TokenCodec interface {
	Encode(payload TokenPayload) (string, error)
	Decode(token string) (TokenPayload, error)
}
