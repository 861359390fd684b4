package service

import (
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/accounthub/account-service/internal/core/domain"
)

// bcryptCost matches the work factor the account data was hashed with.
// Changing it only affects newly written hashes.
const bcryptCost = 12

// BcryptHasher is the production PasswordHasher.
type BcryptHasher struct{}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{}
}

func (BcryptHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", domain.NewAPIError(http.StatusBadRequest, "Password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches hashed. A plain mismatch returns
// (false, nil); an error is returned only when hashed is not a bcrypt hash
// at all.
func (BcryptHasher) Verify(plaintext, hashed string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, domain.NewAPIError(http.StatusBadRequest, "Malformed password hash")
}
