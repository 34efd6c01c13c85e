package util

import (
	"testing"
	"time"

	"eduflow_backend/internal/model"
)

const testSecret = "unit-test-secret-key-0123456789abcdef"

func testUser() *model.User {
	u := &model.User{
		Name:  "Carol",
		Email: "carol@example.com",
		Role:  model.RoleEducator,
	}
	u.ID = 42
	return u
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(token, testSecret)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != model.RoleEducator {
		t.Errorf("Role = %s, want EDUCATOR", claims.Role)
	}
	if claims.Email != "carol@example.com" {
		t.Errorf("Email = %s", claims.Email)
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT(token, "a-completely-different-secret-value"); err == nil {
		t.Fatal("expected error for wrong secret, got nil")
	}
}

func TestParseJWTExpired(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT(token, testSecret); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestParseJWTGarbage(t *testing.T) {
	if _, err := ParseJWT("not.a.token", testSecret); err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
}
