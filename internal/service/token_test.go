package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gamefinder/gamefinder/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	user := &domain.User{ID: 42, Email: "player@example.com"}
	token, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	if claims.UserID != user.ID {
		t.Errorf("expected subject %d, got %d", user.ID, claims.UserID)
	}
	if claims.Email != user.Email {
		t.Errorf("expected email %q, got %q", user.Email, claims.Email)
	}
	if claims.ExpiresAt.Before(time.Now()) {
		t.Error("expected expiry in the future")
	}
}

func TestTokenVerifyExpired(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute)

	token, err := svc.Issue(&domain.User{ID: 1, Email: "a@example.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenVerifyTamperedSignature(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue(&domain.User{ID: 7, Email: "b@example.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Flip one byte of the signature segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := svc.Verify(tampered); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenVerifyWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-one", time.Hour).Issue(&domain.User{ID: 3})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewTokenService("secret-two", time.Hour).Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenVerifyMalformed(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	for _, input := range []string{"", "garbage", "a.b", "a.b.c"} {
		if _, err := svc.Verify(input); !errors.Is(err, domain.ErrInvalidToken) {
			t.Errorf("Verify(%q): expected ErrInvalidToken, got %v", input, err)
		}
	}
}
