package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiryFromToken recovers the expiry instant from a JWT access token's
// exp claim without verifying the signature (the client has no key and
// only needs the timestamp). Returns the zero time when the token is not
// a JWT or carries no exp claim.
func ExpiryFromToken(raw string) time.Time {
	token, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return time.Time{}
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
