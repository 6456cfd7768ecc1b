package utils

import (
	"errors"
	"fmt"

	"github.com/SscSPs/freelance_books/internal/apperrors"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt hash of password. Inputs bcrypt cannot
// represent (over 72 bytes) are reported as validation errors.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", apperrors.NewValidationError("password must be at most 72 bytes")
	}
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
