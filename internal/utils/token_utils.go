package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateAdvocateToken signs an HS256 token whose subject is the advocate ID,
// in the form the API's auth middleware accepts. It is meant for operators and
// local development; production tokens come from the identity provider.
func GenerateAdvocateToken(advocateID, secret, issuer string, expiryDuration time.Duration) (string, error) {
	if advocateID == "" {
		return "", errors.New("advocate ID cannot be empty")
	}
	if expiryDuration <= 0 {
		return "", errors.New("token expiry must be positive")
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   advocateID,
		ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
