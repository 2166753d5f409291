package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a bcrypt hash from the given plaintext password.
//
// A fresh random salt is generated on every call, so hashing the same
// plaintext twice yields two different encoded strings; the salt and cost
// parameters are embedded in the returned encoding, which is all that
// verification needs.
//
// Returns an error only on catastrophic failure (e.g. a password longer than
// bcrypt's 72-byte input limit).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether plaintext password matches the stored
// bcrypt hash.
//
// Comparison is delegated to bcrypt, which re-derives the digest with the
// embedded salt/cost and compares in constant time. A malformed stored hash
// yields false rather than an error, so a corrupted record can never be used
// as an authentication bypass or a crash vector.
func VerifyPassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
