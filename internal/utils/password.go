package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a one-way bcrypt digest from the given plaintext
// password using the default cost.
//
// bcrypt embeds a random per-call salt in the digest, so hashing the same
// password twice yields two different digests. The result is verifiable via
// [VerifyPassword] but not reproducible.
//
// Returns an error if the plaintext is empty or exceeds bcrypt's 72-byte
// input limit.
func HashPassword(plaintext string) (string, error) {
	if plaintext == "" {
		return "", fmt.Errorf("empty password cannot be hashed")
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error occurred during hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword reports whether plaintext, hashed with the salt embedded in
// digest, reproduces digest.
//
// The underlying bcrypt comparison runs in time independent of where a
// mismatch occurs. A malformed digest (e.g. from data corruption) yields
// false; this function never panics.
func VerifyPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
