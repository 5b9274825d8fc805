package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issue signs an HS256 token carrying the username and permissions.
// Validation is handled by the echo-jwt middleware on the read routes.
func Issue(secret, username, permissions string, ttlHours int) (string, error) {
	claims := jwt.MapClaims{
		"sub":  username,
		"perm": permissions,
		"exp":  time.Now().Add(time.Duration(ttlHours) * time.Hour).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}
