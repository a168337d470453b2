package utils

import (
	"testing"
	"time"

	"ouiimi/config"
)

func TestGenerateAndExtractToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("user-1", "a@b.com", "customer", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ExtractClaimsFromToken(token)
	if err != nil {
		t.Fatalf("ExtractClaimsFromToken: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "a@b.com" || claims.Role != "customer" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("user-1", "a@b.com", "customer", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ExtractClaimsFromToken(token); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestHashTokenStable(t *testing.T) {
	a := HashToken("abc")
	b := HashToken("abc")
	if a != b {
		t.Error("hash is not deterministic")
	}
	if a == HashToken("abd") {
		t.Error("distinct tokens hash identically")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}
