package jwtutil

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("secret", time.Hour, "uid-7")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken("secret", token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UID != "uid-7" {
		t.Fatalf("uid = %q, want uid-7", claims.UID)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("secret", time.Hour, "uid")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ParseToken("other-secret", token); err == nil {
		t.Fatal("expected error with wrong secret")
	}
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken("secret", -time.Minute, "uid")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ParseToken("secret", token); err == nil {
		t.Fatal("expected error for expired token")
	}
}
