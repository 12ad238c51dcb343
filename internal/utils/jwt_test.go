package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// signTestToken выпускает валидный HS256-токен для тестов (клиент подписи не проверяет)
func signTestToken(t *testing.T, subject string, lifetime time.Duration) string {
	t.Helper()

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    "test-issuer",
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign test token: %v", err)
	}
	return signed
}

func TestParseUserIDFromJWT_Success(t *testing.T) {
	signed := signTestToken(t, "usr_456", time.Hour)

	userID, err := ParseUserIDFromJWT(signed)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if userID != "usr_456" {
		t.Errorf("expected userID usr_456, got %s", userID)
	}
}

func TestParseUserIDFromJWT_ExpiredTokenStillParses(t *testing.T) {
	// экспирация не проверяется — клиенту нужен только subject
	signed := signTestToken(t, "usr_1", -time.Second)

	userID, err := ParseUserIDFromJWT(signed)
	if err != nil {
		t.Fatalf("expected no error for expired token, got: %v", err)
	}
	if userID != "usr_1" {
		t.Errorf("expected userID usr_1, got %s", userID)
	}
}

func TestParseUserIDFromJWT_EmptySubject(t *testing.T) {
	signed := signTestToken(t, "", time.Hour)

	if _, err := ParseUserIDFromJWT(signed); err == nil {
		t.Error("expected error for empty subject, got nil")
	}
}

func TestParseUserIDFromJWT_Malformed(t *testing.T) {
	if _, err := ParseUserIDFromJWT("not.a.token"); err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}
