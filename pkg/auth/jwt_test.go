// pkg/auth/jwt_test.go
package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/velizon/tracking-api/internal/domain"
)

func testAdmin() *domain.Admin {
	return &domain.Admin{
		ID:      42,
		Email:   "admin@example.com",
		Name:    "Admin",
		IsAdmin: true,
		IsOwner: true,
	}
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, issued, err := svc.Issue(testAdmin())
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if claims.AdminID != 42 || claims.Email != "admin@example.com" || !claims.IsAdmin || !claims.IsOwner {
		t.Errorf("claims = %+v", claims)
	}
	if claims.LoginTime != issued.LoginTime {
		t.Errorf("login time changed in transit: %s vs %s", claims.LoginTime, issued.LoginTime)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl > SessionTTL || ttl < SessionTTL-time.Minute {
		t.Errorf("expiry %v from now, want ~%v", ttl, SessionTTL)
	}
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	token, _, err := NewTokenService("secret-a").Issue(testAdmin())
	if err != nil {
		t.Fatalf("Issue() error: %v", err)
	}

	if _, err := NewTokenService("secret-b").Verify(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("Verify() error = %v, want ErrTokenInvalid", err)
	}
}

func TestTokenService_Verify_Garbage(t *testing.T) {
	svc := NewTokenService("test-secret")
	if _, err := svc.Verify("not.a.token"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("Verify() error = %v, want ErrTokenInvalid", err)
	}
}

func TestTokenService_Verify_Expired(t *testing.T) {
	secret := "test-secret"
	svc := NewTokenService(secret)

	// Sign a token whose 12-hour window has already passed.
	past := time.Now().Add(-13 * time.Hour)
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		AdminID: 42,
		Email:   "admin@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(SessionTTL)),
		},
	})
	signed, err := expired.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() error: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, domain.ErrTokenExpired) {
		t.Errorf("Verify() error = %v, want ErrTokenExpired", err)
	}
}
