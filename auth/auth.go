// Package auth checks admin credentials against the stored accounts.
package auth

import (
	"context"
	"errors"
	"sync"

	"restaurant-site/models"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both an unknown username and a wrong
// password, so callers cannot tell which one failed.
var ErrInvalidCredentials = errors.New("Invalid username or password")

// Verifier resolves a username/password pair to an admin account.
type Verifier interface {
	Verify(ctx context.Context, username, password string) (models.AdminUser, error)
}

// AdminSource lists the accounts a PasswordVerifier checks against.
type AdminSource interface {
	Admins(ctx context.Context) ([]models.AdminUser, error)
}

// checkPassword is swapped in tests to observe comparisons.
var checkPassword = CheckPassword

// dummyHash is compared against when the username is unknown, so both
// failure paths pay the bcrypt cost.
var dummyHash = sync.OnceValue(func() string {
	hash, err := HashPassword("unknown-account-placeholder")
	if err != nil {
		return ""
	}
	return hash
})

// PasswordVerifier compares bcrypt hashes from an AdminSource.
type PasswordVerifier struct {
	Source AdminSource
}

func NewPasswordVerifier(src AdminSource) *PasswordVerifier {
	return &PasswordVerifier{Source: src}
}

func (v *PasswordVerifier) Verify(ctx context.Context, username, password string) (models.AdminUser, error) {
	admins, err := v.Source.Admins(ctx)
	if err != nil {
		return models.AdminUser{}, err
	}
	for _, a := range admins {
		if a.Username != username {
			continue
		}
		if checkPassword(a.PasswordHash, password) {
			return a, nil
		}
		return models.AdminUser{}, ErrInvalidCredentials
	}
	checkPassword(dummyHash(), password)
	return models.AdminUser{}, ErrInvalidCredentials
}

// HashPassword returns a bcrypt hash at the default cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
