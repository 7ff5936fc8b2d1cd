// internal/adapters/httpserver/auth_handlers.go
package httpserver

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/velizon/tracking-api/internal/domain"
	"github.com/velizon/tracking-api/pkg/auth"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respond(w, http.StatusBadRequest, errBody("Invalid request body"))
		return
	}

	claims, token, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(w, err)
		return
	}

	setSessionCookie(w, token)
	s.respond(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Login successful",
		"admin":   claimsSummary(claims),
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	// Stateless sessions: clearing the cookie is all logout can do.
	// The token itself stays valid until its natural expiry.
	clearSessionCookie(w)
	if claims, ok := claimsFrom(r.Context()); ok {
		s.logger.Info("admin logout", zap.String("email", claims.Email))
	}
	s.respond(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Logged out successfully",
	})
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r.Context())
	if !ok {
		s.writeError(w, domain.ErrUnauthenticated)
		return
	}
	s.respond(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Session valid",
		"admin":   claimsSummary(claims),
	})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r.Context())
	if !ok {
		s.writeError(w, domain.ErrUnauthenticated)
		return
	}

	admin, err := s.auth.Profile(r.Context(), claims.AdminID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"admin":   admin,
	})
}

func claimsSummary(c *auth.Claims) map[string]interface{} {
	return map[string]interface{}{
		"id":        c.AdminID,
		"email":     c.Email,
		"name":      c.Name,
		"isAdmin":   c.IsAdmin,
		"isOwner":   c.IsOwner,
		"loginTime": c.LoginTime,
	}
}
