package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor applied when hashing passwords.
// Higher than the library default to keep brute-forcing expensive.
const bcryptCost = 12

// HashPassword derives a salted bcrypt digest from the given plaintext.
//
// bcrypt embeds a random salt in every digest, so hashing the same plaintext
// twice yields different results. The digest is self-describing: the salt and
// cost parameters needed for verification are part of the encoded string.
//
// Returns an error if the plaintext exceeds bcrypt's 72-byte limit or hashing
// fails for any other reason.
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword reports whether plaintext matches the given bcrypt digest.
//
// The comparison recomputes the hash with the salt and cost embedded in the
// digest and compares in constant time inside the bcrypt library.
func VerifyPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
