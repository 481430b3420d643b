package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/playschool-a2z/management-api/internal/core/domain"
)

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	user := &domain.User{Username: "alice", Roles: []domain.Role{domain.RoleAdmin}}

	raw, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := svc.Validate(raw)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("subject = %q, want %q", claims.Subject, "alice")
	}
	if claims.TokenID == "" {
		t.Fatalf("expected a token ID")
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt); got != time.Hour {
		t.Fatalf("token lifetime = %v, want %v", got, time.Hour)
	}
}

func TestTokenService_ValidateIdempotent(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	raw, err := svc.Issue(&domain.User{Username: "bob"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	first, err := svc.Validate(raw)
	if err != nil {
		t.Fatalf("first Validate: %v", err)
	}
	second, err := svc.Validate(raw)
	if err != nil {
		t.Fatalf("second Validate: %v", err)
	}
	if *first != *second {
		t.Fatalf("repeated validation diverged: %+v vs %+v", first, second)
	}
}

func TestTokenService_UniqueTokenIDs(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	user := &domain.User{Username: "carol"}

	raw1, _ := svc.Issue(user)
	raw2, _ := svc.Issue(user)
	c1, err := svc.Validate(raw1)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	c2, err := svc.Validate(raw2)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if c1.TokenID == c2.TokenID {
		t.Fatalf("two issued tokens share an ID: %q", c1.TokenID)
	}
}

func TestTokenService_ExpiryBoundary(t *testing.T) {
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := NewTokenService("test-secret", time.Hour)
	svc.now = func() time.Time { return base }

	raw, err := svc.Issue(&domain.User{Username: "dave"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// One second before expiry the token still validates.
	svc.now = func() time.Time { return base.Add(time.Hour - time.Second) }
	if _, err := svc.Validate(raw); err != nil {
		t.Fatalf("token should be valid just before expiry: %v", err)
	}

	// Exactly at expiry the token is already expired.
	svc.now = func() time.Time { return base.Add(time.Hour) }
	if _, err := svc.Validate(raw); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("at exp instant: expected ErrTokenExpired, got %v", err)
	}

	svc.now = func() time.Time { return base.Add(2 * time.Hour) }
	if _, err := svc.Validate(raw); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("past expiry: expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_TamperedSignature(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	raw, err := svc.Issue(&domain.User{Username: "eve"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	other := NewTokenService("different-secret", time.Hour)
	if _, err := other.Validate(raw); !errors.Is(err, ErrTokenSignatureInvalid) {
		t.Fatalf("wrong secret: expected ErrTokenSignatureInvalid, got %v", err)
	}

	// Corrupt a character in the middle of the signature segment.
	dot := strings.LastIndex(raw, ".")
	mid := dot + 1 + (len(raw)-dot-1)/2
	flip := byte('A')
	if raw[mid] == 'A' {
		flip = 'B'
	}
	tampered := raw[:mid] + string(flip) + raw[mid+1:]
	if _, err := svc.Validate(tampered); !errors.Is(err, ErrTokenSignatureInvalid) && !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("tampered token: expected a validation failure, got %v", err)
	}
}

func TestTokenService_Garbage(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		if _, err := svc.Validate(raw); !errors.Is(err, ErrTokenMalformed) {
			t.Fatalf("Validate(%q): expected ErrTokenMalformed, got %v", raw, err)
		}
	}
}

func TestTokenClaims_Remaining(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	c := &TokenClaims{ExpiresAt: now.Add(30 * time.Minute)}
	if got := c.Remaining(now); got != 30*time.Minute {
		t.Fatalf("Remaining = %v, want %v", got, 30*time.Minute)
	}
	if got := c.Remaining(now.Add(time.Hour)); got >= 0 {
		t.Fatalf("Remaining past expiry should be negative, got %v", got)
	}
}
