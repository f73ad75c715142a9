// internal/app/system/authutil/authutil.go

// Package authutil holds credential helpers shared by the login, signup,
// and profile flows.
package authutil

import (
	"fmt"
	"strings"

	"github.com/badoux/checkmail"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the floor enforced at signup and password change.
const MinPasswordLength = 6

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword enforces the password rules. Returns a user-facing
// error message on failure.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}
	return nil
}

// PasswordRules describes the password requirements for display.
func PasswordRules() string {
	return fmt.Sprintf("At least %d characters.", MinPasswordLength)
}

// ValidateEmail checks the address format. It does not touch the network.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if err := checkmail.ValidateFormat(email); err != nil {
		return fmt.Errorf("invalid email address")
	}
	return nil
}
