package auth

import (
	"testing"
	"time"
)

func TestIssueAndParseToken(t *testing.T) {
	secret := "test-secret"

	token, err := IssueToken(secret, "user-1", "rider@example.com", "user", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ParseToken(secret, token)
	if err != nil {
		t.Fatal(err)
	}
	if claims["user_id"] != "user-1" {
		t.Errorf("user_id = %v", claims["user_id"])
	}
	if claims["email"] != "rider@example.com" {
		t.Errorf("email = %v", claims["email"])
	}
	if claims["role"] != "user" {
		t.Errorf("role = %v", claims["role"])
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := IssueToken("secret-a", "user-1", "a@b.c", "user", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken("secret-b", token); err == nil {
		t.Fatal("expected error for token signed with another secret")
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, err := IssueToken("secret", "user-1", "a@b.c", "user", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken("secret", token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseToken("secret", "not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestGuestTokenCarriesGuestRole(t *testing.T) {
	token, err := IssueToken("secret", "guest_abc123", "", "guest", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	claims, err := ParseToken("secret", token)
	if err != nil {
		t.Fatal(err)
	}
	if claims["role"] != "guest" {
		t.Errorf("role = %v", claims["role"])
	}
}
