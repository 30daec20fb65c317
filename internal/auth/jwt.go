package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTCodec is the default TokenCodec: HS256-signed JWTs with the user ID as
// subject and origIat as a custom claim.
type JWTCodec struct {
	secret []byte
	issuer string
}

// NewJWTCodec creates a JWT codec.
// secret must be at least 32 characters for HS256 security.
func NewJWTCodec(secret string, issuer string) *JWTCodec {
	return &JWTCodec{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// tokenClaims extends the registered claims with the original issue time.
// origIat survives refresh cycles unchanged, exp does not.
type tokenClaims struct {
	jwt.RegisteredClaims
	OrigIat int64 `json:"origIat"`
}

// Encode signs the payload as an HS256 JWT.
func (c *JWTCodec) Encode(payload TokenPayload) (string, error) {
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   payload.Sub.String(),
			Issuer:    c.issuer,
			IssuedAt:  jwt.NewNumericDate(payload.OrigIat),
			ExpiresAt: jwt.NewNumericDate(payload.Exp),
		},
		OrigIat: payload.OrigIat.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Decode parses and validates a token, returning its payload.
// Returns ErrTokenExpired for valid-but-expired tokens and ErrTokenInvalid
// for anything else that fails validation.
func (c *JWTCodec) Decode(tokenString string) (TokenPayload, error) {
	if tokenString == "" {
		return TokenPayload{}, fmt.Errorf("%w: empty token", ErrTokenInvalid)
	}

	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenPayload{}, ErrTokenExpired
		}
		return TokenPayload{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return TokenPayload{}, fmt.Errorf("%w: bad claims", ErrTokenInvalid)
	}

	if claims.Issuer != c.issuer {
		return TokenPayload{}, fmt.Errorf("%w: issuer %q", ErrTokenInvalid, claims.Issuer)
	}

	sub, err := uuid.Parse(claims.Subject)
	if err != nil {
		return TokenPayload{}, fmt.Errorf("%w: subject: %v", ErrTokenInvalid, err)
	}

	return TokenPayload{
		Sub:     sub,
		OrigIat: time.Unix(claims.OrigIat, 0).UTC(),
		Exp:     claims.ExpiresAt.Time.UTC(),
	}, nil
}
