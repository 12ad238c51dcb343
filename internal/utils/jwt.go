// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for HTTP client initialization, JWT claim parsing,
// UUID generation, and other common operations.
package utils

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ParseUserIDFromJWT extracts the "sub" (subject) claim from tokenString
// without verifying the signature. The client has no signing key — the
// server is the only party that verifies tokens — but the subject is still
// useful for session restore and log correlation.
//
// Returns an error if the token is structurally invalid or the subject
// claim is missing or empty.
func ParseUserIDFromJWT(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", errors.New("empty subject error")
	}

	return sub, nil
}
