// Package auth holds the security-sensitive primitives shared by the
// signup/signin workflows and the request authentication middleware:
// password hashing, token issuance and validation, and the access decision.
package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a bcrypt hash of the plaintext. The salt is generated
// per call, so hashing the same plaintext twice yields different values that
// both verify.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored hash. The
// comparison is constant-time with respect to where a mismatch occurs.
// A malformed hash verifies as false; it never panics or errors.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
