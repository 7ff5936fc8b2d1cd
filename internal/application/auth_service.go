// internal/application/auth_service.go
package application

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/velizon/tracking-api/internal/domain"
	"github.com/velizon/tracking-api/internal/ports"
	"github.com/velizon/tracking-api/pkg/auth"
)

type AuthService struct {
	repo   ports.AdminRepositoryPort
	tokens *auth.TokenService
	logger *zap.Logger
}

func NewAuthService(repo ports.AdminRepositoryPort, tokens *auth.TokenService, logger *zap.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, logger: logger}
}

// Login verifies the password of the admin matching email and issues a
// session token. An unknown email and a wrong password both come back
// as ErrInvalidCredentials so the response gives no enumeration signal.
func (s *AuthService) Login(ctx context.Context, email, password string) (*auth.Claims, string, error) {
	var missing []string
	if email == "" {
		missing = append(missing, "email")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, "", domain.NewValidationError(missing...)
	}

	admin, err := s.repo.FindAdminByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, "", err
	}
	if admin == nil {
		return nil, "", domain.ErrInvalidCredentials
	}
	if !auth.CheckPassword(password, admin.Password) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, claims, err := s.tokens.Issue(admin)
	if err != nil {
		return nil, "", err
	}

	// Best effort: a failed last_login write must not fail the login.
	if err := s.repo.TouchLastLogin(ctx, admin.ID); err != nil {
		s.logger.Warn("failed to update last_login", zap.Int64("admin_id", admin.ID), zap.Error(err))
	}

	s.logger.Info("admin login successful", zap.String("email", admin.Email))
	return claims, token, nil
}

// VerifySession validates a client-held token. Missing, malformed and
// expired tokens all surface as authentication failures; only the
// expiry case is classified separately for the transport.
func (s *AuthService) VerifySession(token string) (*auth.Claims, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	return s.tokens.Verify(token)
}

// Profile returns the stored admin row behind a verified session.
func (s *AuthService) Profile(ctx context.Context, adminID int64) (*domain.Admin, error) {
	admin, err := s.repo.FindAdminByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrNotFound
	}
	return admin, nil
}
