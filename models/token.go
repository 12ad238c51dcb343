package models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenPair holds the access/refresh token pair issued by the server
// after a verified login and after every successful refresh.
//
// The pair is persisted in the durable state store so that a session
// survives client restarts. The access token is a JWT; the client
// never verifies its signature (the server does), but it does inspect
// the registered claims for expiry and subject.
type TokenPair struct {
	// AccessToken is the short-lived bearer token attached to every
	// authenticated request.
	AccessToken string `json:"access_token"`

	// RefreshToken is the long-lived token exchanged for a new pair
	// when the access token expires.
	RefreshToken string `json:"refresh_token"`
}

// Empty reports whether no session is held.
func (t TokenPair) Empty() bool {
	return t.AccessToken == "" && t.RefreshToken == ""
}

// AccessClaims parses the access token without signature verification
// and returns its registered claims. Used for session restore (subject
// = user ID) and for logging the token's remaining lifetime.
//
// Returns an error if the token is empty or not a structurally valid
// JWT.
func (t TokenPair) AccessClaims() (*jwt.RegisteredClaims, error) {
	if t.AccessToken == "" {
		return nil, fmt.Errorf("empty access token")
	}

	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(t.AccessToken, claims); err != nil {
		return nil, fmt.Errorf("parse access token claims: %w", err)
	}

	return claims, nil
}

// AccessExpiresAt returns the access token's expiry time, or the zero
// time if the token carries no exp claim or cannot be parsed.
func (t TokenPair) AccessExpiresAt() time.Time {
	claims, err := t.AccessClaims()
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
