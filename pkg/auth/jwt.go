// pkg/auth/jwt.go
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/velizon/tracking-api/internal/domain"
)

// SessionTTL is how long an admin session token stays valid.
const SessionTTL = 12 * time.Hour

type Claims struct {
	AdminID   int64  `json:"adminId"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	IsAdmin   bool   `json:"isAdmin"`
	IsOwner   bool   `json:"isOwner"`
	LoginTime string `json:"loginTime"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed session tokens. It owns the
// signing secret; callers treat tokens as opaque strings.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs a token for admin and returns it with the embedded
// claims, expiring SessionTTL from now.
func (t *TokenService) Issue(admin *domain.Admin) (string, *Claims, error) {
	now := time.Now()
	claims := Claims{
		AdminID:   admin.ID,
		Email:     admin.Email,
		Name:      admin.Name,
		IsAdmin:   admin.IsAdmin,
		IsOwner:   admin.IsOwner,
		LoginTime: now.UTC().Format(time.RFC3339),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", nil, err
	}
	return signed, &claims, nil
}

// Verify returns the embedded claims, domain.ErrTokenExpired for a
// well-signed but stale token, or domain.ErrTokenInvalid otherwise.
func (t *TokenService) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
