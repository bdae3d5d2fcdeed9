package auth

import (
	"testing"
	"time"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword(hash, "secret123") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tok, err := MakeToken("user-1", "admin", "sess-1", "testsecret", time.Hour)
	if err != nil {
		t.Fatalf("make: %v", err)
	}

	c, err := ParseToken(tok, "testsecret")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.UserID != "user-1" || c.Role != "admin" || c.SessionID != "sess-1" {
		t.Errorf("claims = %+v", c)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	tok, _ := MakeToken("user-1", "admin", "sess-1", "testsecret", time.Hour)
	if _, err := ParseToken(tok, "othersecret"); err == nil {
		t.Error("token accepted with wrong secret")
	}
}

func TestTokenExpired(t *testing.T) {
	tok, _ := MakeToken("user-1", "admin", "sess-1", "testsecret", -time.Minute)
	if _, err := ParseToken(tok, "testsecret"); err == nil {
		t.Error("expired token accepted")
	}
}

func TestTokenGarbage(t *testing.T) {
	if _, err := ParseToken("not.a.token", "testsecret"); err == nil {
		t.Error("garbage accepted")
	}
}
