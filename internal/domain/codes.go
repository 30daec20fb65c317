package domain

import "errors"

// ExpectedError is a machine-readable auth failure returned inside a
// mutation payload, next to success=false.
type ExpectedError struct {
	Code    string
	Message string
}

// The fixed catalog of expected auth failures.
var (
	MsgInvalidCredentials = ExpectedError{Code: "invalid_credentials", Message: "Please enter valid credentials."}
	MsgNotVerified        = ExpectedError{Code: "not_verified", Message: "Please verify your account."}
	MsgUnauthenticated    = ExpectedError{Code: "unauthenticated", Message: "Unauthenticated."}
	MsgExpiredToken       = ExpectedError{Code: "expired_token", Message: "Token is expired. Please sign in again."}
	MsgInvalidToken       = ExpectedError{Code: "invalid_token", Message: "Invalid token."}
)

// AsExpected maps an error to its ExpectedError entry.
// Returns ok=false for errors outside the catalog; those are unexpected and
// must propagate as transport errors.
func AsExpected(err error) (ExpectedError, bool) {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return MsgInvalidCredentials, true
	case errors.Is(err, ErrNotVerified):
		return MsgNotVerified, true
	case errors.Is(err, ErrUnauthenticated):
		return MsgUnauthenticated, true
	case errors.Is(err, ErrExpiredToken):
		return MsgExpiredToken, true
	case errors.Is(err, ErrInvalidToken):
		return MsgInvalidToken, true
	}
	return ExpectedError{}, false
}
