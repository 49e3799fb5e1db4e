package token

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// IsExpired reports whether the stored bearer token carries an exp claim in
// the past. The signature is never checked here; the remote API is the only
// authority on token validity, this is just a cheap pre-check so an
// obviously dead session is dropped before a network round-trip. Opaque
// (non-JWT) tokens are never considered expired locally.
func IsExpired(tokenString string) bool {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}
