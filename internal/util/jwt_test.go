package util

import (
	"testing"
	"time"

	"pylearn_backend/internal/model"
)

func testUser() *model.User {
	user := &model.User{Username: "heidi", Email: "heidi@example.com"}
	user.ID = 12
	return user
}

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT(testUser(), "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseJWT(token, "secret")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 12 || claims.Username != "heidi" || claims.Email != "heidi@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(testUser(), "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseJWT(token, "other-secret"); err == nil {
		t.Fatalf("expected an error for a token signed with another secret")
	}
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := GenerateJWT(testUser(), "secret", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseJWT(token, "secret"); err == nil {
		t.Fatalf("expected an error for an expired token")
	}
}

func TestParseJWT_Garbage(t *testing.T) {
	if _, err := ParseJWT("not.a.token", "secret"); err == nil {
		t.Fatalf("expected an error for a malformed token")
	}
}
