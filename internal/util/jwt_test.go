package util

import (
	"testing"
	"time"
)

const testSecret = "test-secret"

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(testSecret, "fintrack", 42, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Issuer != "fintrack" {
		t.Errorf("Issuer = %q, want fintrack", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("token id is empty, want uuid")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, "fintrack", 1, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := ParseToken("another-secret", token); err == nil {
		t.Error("ParseToken() with wrong secret error = nil, want error")
	}
}

func TestGenerateToken_UniqueIDs(t *testing.T) {
	a, err := GenerateToken(testSecret, "fintrack", 1, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	b, err := GenerateToken(testSecret, "fintrack", 1, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	ca, _ := ParseToken(testSecret, a)
	cb, _ := ParseToken(testSecret, b)
	if ca.ID == cb.ID {
		t.Errorf("two tokens share id %q", ca.ID)
	}
}
