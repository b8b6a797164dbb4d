package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/wimaserenity/gardens-api/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:       "user_1",
		Email:    "staff@example.com",
		Role:     domain.RoleStaff,
		IsActive: true,
	}
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, zerolog.Nop())

	raw, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := svc.Verify(raw)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "user_1" || claims.Email != "staff@example.com" || claims.Role != "staff" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Fatalf("expected iat and exp to be set")
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != time.Hour {
		t.Fatalf("validity window = %v, want 1h", got)
	}
}

func TestTokenService_VerifyExpired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, zerolog.Nop())
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	raw, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// The signature is genuine; only the expiry has passed.
	if _, err := svc.Verify(raw); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestTokenService_VerifyWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour, zerolog.Nop())
	verifier := NewTokenService("secret-b", time.Hour, zerolog.Nop())

	raw, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.Verify(raw); err == nil {
		t.Fatalf("expected signature mismatch to be rejected")
	}
}

func TestTokenService_VerifyRejectsWrongAlgorithm(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, zerolog.Nop())

	// An unsigned token must never resolve to an identity.
	tkn := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": "user_1"})
	raw, err := tkn.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := svc.Verify(raw); err == nil {
		t.Fatalf("expected alg=none token to be rejected")
	}
}

func TestTokenService_VerifyGarbage(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, zerolog.Nop())
	if _, err := svc.Verify("not-a-token"); err == nil {
		t.Fatalf("expected malformed token to be rejected")
	}
}
