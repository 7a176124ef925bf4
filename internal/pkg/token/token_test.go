package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndVerify(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)

	raw, err := iss.Issue("user-1", "alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := iss.Verify(raw)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Fatalf("expected subject user-1, got %q", claims.Subject)
	}
	if claims.Username != "alice" {
		t.Fatalf("expected username alice, got %q", claims.Username)
	}
}

func TestVerify_Expired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	iss := NewIssuer("secret", time.Hour).WithClock(clock)

	raw, err := iss.Issue("user-1", "alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Still valid just before expiry.
	now = now.Add(59 * time.Minute)
	if _, err := iss.Verify(raw); err != nil {
		t.Fatalf("expected valid before ttl, got %v", err)
	}

	// Invalid once the ttl has elapsed.
	now = now.Add(2 * time.Minute)
	if _, err := iss.Verify(raw); err != ErrExpired {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	raw, err := NewIssuer("secret-a", time.Hour).Issue("user-1", "alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewIssuer("secret-b", time.Hour).Verify(raw); err != ErrBadSignature {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := iss.Verify(raw); err != ErrMalformed {
			t.Fatalf("input %q: expected ErrMalformed, got %v", raw, err)
		}
	}
}

func TestVerify_RejectsUnexpectedAlgorithm(t *testing.T) {
	// A token signed with "none" must never verify, whatever its payload.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-1"})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewIssuer("secret", time.Hour).Verify(raw); err == nil {
		t.Fatal("expected verification failure for alg=none token")
	}
}

func TestVerify_MissingSubject(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "alice",
		"exp":      time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := iss.Verify(raw); err != ErrMalformed {
		t.Fatalf("expected ErrMalformed for token without subject, got %v", err)
	}
}
