package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// AuthToken is the raw session token returned by a successful login.
//
// The client treats it as an opaque string: it is neither stored nor
// refreshed. When the server issues JWTs, [AuthToken.Claims] can decode the
// registered claims for display.
type AuthToken string

// String returns the token as sent by the server.
// It implements the [fmt.Stringer] interface.
func (t AuthToken) String() string {
	return string(t)
}

// Claims decodes the registered JWT claims (sub, exp, iat, iss, ...) of t
// WITHOUT verifying the signature. The result must never be used for
// authorization decisions.
//
// Returns an error if t is not a well-formed JWT.
func (t AuthToken) Claims() (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(string(t), claims); err != nil {
		return nil, fmt.Errorf("error decoding token claims: %w", err)
	}

	return claims, nil
}
