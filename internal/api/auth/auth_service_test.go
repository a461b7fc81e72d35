package auth

import (
	"testing"
	"time"

	"github.com/GH-57/First-Project/internal/config"
)

func newTestService(ttl time.Duration) *AuthService {
	return NewAuthService(config.AuthConfig{Secret: "super-secret", TokenTTL: ttl})
}

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	s := newTestService(time.Hour)

	hash, err := s.HashPassword("pw")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "pw" {
		t.Fatal("hash equals the plain password")
	}

	if err := s.CheckPasswordHash("pw", hash); err != nil {
		t.Fatalf("CheckPasswordHash rejected the right password: %v", err)
	}
	if err := s.CheckPasswordHash("wrong", hash); err == nil {
		t.Fatal("CheckPasswordHash accepted a wrong password")
	}
}

func TestGenerateAndParseJWT_Success(t *testing.T) {
	t.Parallel()

	s := newTestService(time.Hour)

	tok, err := s.GenerateJWT("a@x.com")
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	claims, err := s.ParseJWT(tok)
	if err != nil {
		t.Fatalf("ParseJWT error: %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("email mismatch: got %q want %q", claims.Email, "a@x.com")
	}
	if claims.Subject != "a@x.com" {
		t.Fatalf("subject mismatch: got %q", claims.Subject)
	}
}

func TestParseJWT_Expired(t *testing.T) {
	t.Parallel()

	s := newTestService(-1 * time.Second)

	tok, err := s.GenerateJWT("a@x.com")
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	if _, err := s.ParseJWT(tok); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestParseJWT_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := newTestService(time.Hour).GenerateJWT("a@x.com")
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	other := NewAuthService(config.AuthConfig{Secret: "other-secret", TokenTTL: time.Hour})
	if _, err := other.ParseJWT(tok); err == nil {
		t.Fatal("expected error for token signed with another secret, got nil")
	}
}

func TestParseJWT_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := newTestService(time.Hour).ParseJWT("not.a.jwt"); err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
}
