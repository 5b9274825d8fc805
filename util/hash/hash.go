// util/hash/hash.go
package hash

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2-SHA256 with a per-user salt, hex encoded. Parameters must stay
// stable or existing password hashes stop verifying.
const (
	iterations = 100000
	keyLen     = 32
	saltBytes  = 8
)

// NewSalt returns a fresh random salt as a 16-char hex string.
func NewSalt() (string, error) {
	b := make([]byte, saltBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func Password(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLen, sha256.New)
	return hex.EncodeToString(key)
}

func Check(hashed, salt, password string) bool {
	computed := Password(password, salt)
	return subtle.ConstantTimeCompare([]byte(hashed), []byte(computed)) == 1
}
