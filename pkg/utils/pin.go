package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// PINLength is the fixed length of a terminal PIN
const PINLength = 6

// HashPIN hashes a terminal PIN using bcrypt
func HashPIN(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPIN compares a plain PIN against its bcrypt hash
func CheckPIN(pin, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) == nil
}

// ValidPINFormat reports whether the PIN is exactly six digits
func ValidPINFormat(pin string) bool {
	if len(pin) != PINLength {
		return false
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
