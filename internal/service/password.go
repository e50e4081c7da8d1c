package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	passwordLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	passwordDigits  = "0123456789"
	passwordSpecial = "!@#$%^&*()-_=+[]{}<>?"

	// DefaultPasswordLength is used when no length is requested
	DefaultPasswordLength = 12
	// MinPasswordLength is the smallest accepted password length
	MinPasswordLength = 1
	// MaxPasswordLength bounds the request to keep responses small
	MaxPasswordLength = 256
)

// GeneratePassword returns a uniformly random password of the given length.
// The charset is letters and digits, extended with punctuation when
// specialChars is set.
func GeneratePassword(length int, specialChars bool) (string, error) {
	if length < MinPasswordLength || length > MaxPasswordLength {
		return "", fmt.Errorf("password length must be between %d and %d, got %d",
			MinPasswordLength, MaxPasswordLength, length)
	}

	charset := passwordLetters + passwordDigits
	if specialChars {
		charset += passwordSpecial
	}

	max := big.NewInt(int64(len(charset)))
	password := make([]byte, length)
	for i := range password {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		password[i] = charset[n.Int64()]
	}

	return string(password), nil
}
