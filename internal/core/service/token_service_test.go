package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lexcase/practice-api/internal/core/domain"
)

const testSecret = "test-secret"

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	token, err := svc.Issue(42)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if token == "" {
		t.Fatal("Issue() returned empty token")
	}

	userID, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if userID != 42 {
		t.Fatalf("Verify() userID = %d, want 42", userID)
	}
}

func TestTokenService_VerifyExpired(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	past := time.Now().UTC().Add(-time.Hour)
	claims := tokenClaims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(past.Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(past),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	if _, err := svc.Verify(expired); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("Verify() error = %v, want ErrTokenExpired", err)
	}
}

func TestTokenService_VerifyWrongSecret(t *testing.T) {
	issuer := NewTokenService("other-secret", time.Hour)
	svc := NewTokenService(testSecret, time.Hour)

	token, err := issuer.Issue(42)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenSignatureInvalid) {
		t.Fatalf("Verify() error = %v, want ErrTokenSignatureInvalid", err)
	}
}

func TestTokenService_VerifyWrongAlgorithm(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	claims := tokenClaims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenSignatureInvalid) {
		t.Fatalf("Verify() error = %v, want ErrTokenSignatureInvalid", err)
	}
}

func TestTokenService_VerifyMalformed(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Verify(raw); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Fatalf("Verify(%q) error = %v, want ErrTokenMalformed", raw, err)
		}
	}
}

func TestTokenService_VerifyMissingUserID(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("Verify() error = %v, want ErrTokenMalformed", err)
	}
}

func TestTokenService_DefaultTTL(t *testing.T) {
	svc := NewTokenService(testSecret, 0)
	if svc.ttl != defaultTokenTTL {
		t.Fatalf("ttl = %v, want %v", svc.ttl, defaultTokenTTL)
	}
}
