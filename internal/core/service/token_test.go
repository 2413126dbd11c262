package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskhive/task-system/internal/core/domain"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("user_1", true)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "user_1" {
		t.Fatalf("unexpected subject: %s", claims.UserID)
	}
	if !claims.IsAdmin {
		t.Fatalf("expected admin claim")
	}
	if claims.Subject != "user_1" {
		t.Fatalf("registered subject not set: %s", claims.Subject)
	}
}

func TestTokenService_VerifyIsIdempotent(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("user_2", false)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	first, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("first verify: %v", err)
	}
	second, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("second verify: %v", err)
	}
	if first.UserID != second.UserID || first.IsAdmin != second.IsAdmin {
		t.Fatalf("claims differ between verifications: %+v vs %+v", first, second)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	past := time.Now().Add(-2 * time.Hour)
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_3",
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Minute)),
		},
		UserID: "user_3",
	})
	signed, err := expired.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue("user_4", false)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(tok); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", tok, err)
		}
	}
}

func TestTokenService_DefaultTTL(t *testing.T) {
	svc := NewTokenService("secret", -1)

	token, err := svc.Issue("user_5", false)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	lifetime := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time)
	if lifetime != 240*time.Hour {
		t.Fatalf("expected 10-day lifetime, got %s", lifetime)
	}
}
