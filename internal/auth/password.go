package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// passwordCost is the bcrypt work factor; tests lower it
var passwordCost = bcrypt.DefaultCost

// HashPassword returns a salted bcrypt digest of password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches digest. A mismatch is
// (false, nil); an unusable digest is an error.
func VerifyPassword(password, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
