package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted bcrypt encoding of the given plaintext
// password. Each call embeds a fresh random salt, so hashing the same
// password twice produces different encodings; VerifyPassword remains
// deterministic against any of them.
//
// The work factor is bcrypt.DefaultCost. Hashing is deliberately expensive —
// it must never run on a latency-critical path without isolation.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether the plaintext password matches the stored
// bcrypt encoding. Argument order follows bcrypt.CompareHashAndPassword.
//
// A mismatch is a plain false, not an error. A malformed or unparseable
// stored hash is also false: the credential simply does not verify.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
