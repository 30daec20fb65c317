package auth

import (
	"github.com/shmoon-kr/gqlauth/internal/auth"
	"github.com/shmoon-kr/gqlauth/internal/domain"
)

// AuthResult is returned by operations that issue a token pair.
type AuthResult struct {
	AccessToken   string
	Payload       auth.TokenPayload
	RefreshToken  string // raw token, NOT hash
	RefreshRecord *domain.RefreshToken
	User          *domain.User
}

// VerifyResult is returned by VerifyToken: the decoded payload and the user
// it points at.
type VerifyResult struct {
	Payload auth.TokenPayload
	User    *domain.User
}
