package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt cost factor applied to every newly hashed
// password. Each unit doubles the work required for one hash computation.
const PasswordHashCost = 10

// ErrEmptyPassword is returned by HashPassword when the plaintext is empty.
var ErrEmptyPassword = errors.New("empty password")

// HashPassword derives a storable bcrypt hash from the given plaintext.
//
// bcrypt generates a fresh random salt on every call and embeds the salt
// and cost factor in the resulting hash string, so hashing the same
// plaintext twice yields different values that both verify correctly.
//
// Returns ErrEmptyPassword for an empty plaintext, or a wrapped bcrypt
// error if hashing fails.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// VerifyPassword reports whether the plaintext candidate matches the stored
// bcrypt hash. The comparison uses the salt and cost embedded in the hash
// and runs in constant time.
//
// Any failure — mismatch, malformed or truncated hash — yields false; the
// function never panics or propagates an error to the caller.
func VerifyPassword(password, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}
