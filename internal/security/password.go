// Package security provides password hashing, one-time codes and access tokens.
package security

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor for passwords and one-time codes.
const PasswordCost = 10

const (
	otpAlphabet = "0123456789"
	otpLength   = 6
)

// HashPassword returns the bcrypt hash of plain.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ComparePassword reports whether plain matches hash.
func ComparePassword(hash, plain string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// NewOTP returns a random six digit code.
func NewOTP() (string, error) {
	return gonanoid.Generate(otpAlphabet, otpLength)
}
