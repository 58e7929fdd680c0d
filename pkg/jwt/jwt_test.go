package jwt

import (
	"testing"
	"time"
)

var secret = []byte("test-secret")

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(secret, 42, "access", time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := ParseToken(secret, "access", token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Type != "access" {
		t.Fatalf("expected type access, got %s", claims.Type)
	}
}

func TestParseToken_WrongType(t *testing.T) {
	token, err := GenerateToken(secret, 1, "refresh", time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ParseToken(secret, "access", token); err == nil {
		t.Fatal("expected error for mismatched token type")
	}
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken(secret, 1, "access", -time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ParseToken(secret, "access", token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestNearExpiry(t *testing.T) {
	token, err := GenerateToken(secret, 1, "access", 30*time.Second)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	claims, err := ParseToken(secret, "access", token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}

	if !NearExpiry(claims, time.Minute) {
		t.Fatal("30s token should be near expiry with 1m buffer")
	}
	if NearExpiry(claims, time.Second) {
		t.Fatal("30s token should not be near expiry with 1s buffer")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(secret, 1, "access", time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ParseToken([]byte("other-secret"), "access", token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}
