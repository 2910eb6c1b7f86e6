package service

import (
	"errors"
	"testing"
	"time"

	"taskdeck/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	for _, userID := range []int64{1, 42, 999999} {
		token, err := svc.Issue(userID)
		if err != nil {
			t.Fatalf("issue for %d: %v", userID, err)
		}

		got, err := svc.Verify(token)
		if err != nil {
			t.Fatalf("verify for %d: %v", userID, err)
		}
		if got != userID {
			t.Fatalf("verify = %d; want %d", got, userID)
		}
	}
}

func TestTokenNotInterchangeable(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	tokenA, err := svc.Issue(1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	tokenB, err := svc.Issue(2)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	gotA, _ := svc.Verify(tokenA)
	gotB, _ := svc.Verify(tokenB)
	if gotA == gotB {
		t.Fatalf("tokens for different users verified to the same id %d", gotA)
	}
}

func TestTokenWrongSecretRejected(t *testing.T) {
	issuer := NewTokenService("secret-one", time.Hour)
	verifier := NewTokenService("secret-two", time.Hour)

	token, err := issuer.Issue(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("verify with wrong secret: got %v; want ErrInvalidToken", err)
	}
}

func TestTokenExpiryEnforced(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute)

	token, err := svc.Issue(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("verify expired token: got %v; want ErrInvalidToken", err)
	}
}

func TestTokenMalformedRejected(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	for _, garbage := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(garbage); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("verify(%q): got %v; want ErrInvalidToken", garbage, err)
		}
	}
}
