// internal/adapters/httpserver/server.go
package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/velizon/tracking-api/internal/application"
	"github.com/velizon/tracking-api/internal/domain"
	"github.com/velizon/tracking-api/pkg/auth"
)

// sessionCookie is the HTTP-only cookie carrying the session token.
const sessionCookie = "adminToken"

type Server struct {
	auth      *application.AuthService
	shipments *application.ShipmentService
	logger    *zap.Logger
}

func NewServer(authSvc *application.AuthService, shipmentSvc *application.ShipmentService, logger *zap.Logger) *Server {
	return &Server{auth: authSvc, shipments: shipmentSvc, logger: logger}
}

// Router wires every route. All /shipment routes sit behind a session;
// the tracking lookup stays public.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestID, s.logRequests)

	r.HandleFunc("/", s.handleHealth).Methods(http.MethodGet)

	authRouter := r.PathPrefix("/auth").Subrouter()
	authRouter.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
	authRouter.Handle("/logout", s.requireSession(http.HandlerFunc(s.handleLogout))).Methods(http.MethodPost)
	authRouter.Handle("/verify", s.requireSession(http.HandlerFunc(s.handleVerify))).Methods(http.MethodGet)
	authRouter.Handle("/profile", s.requireSession(http.HandlerFunc(s.handleProfile))).Methods(http.MethodGet)

	shipmentRouter := r.PathPrefix("/shipment").Subrouter()
	shipmentRouter.Use(s.requireSession)
	shipmentRouter.HandleFunc("/add_shipment", s.handleAddShipment).Methods(http.MethodPost)
	shipmentRouter.HandleFunc("/all", s.handleListShipments).Methods(http.MethodGet)
	shipmentRouter.HandleFunc("/update/{shipmentId}", s.handleUpdateShipment).Methods(http.MethodPut)
	shipmentRouter.HandleFunc("/confirm-delivery/{trackingNumber}", s.handleConfirmDelivery).Methods(http.MethodPut)
	shipmentRouter.HandleFunc("/delete/{shipmentId}", s.handleDeleteShipment).Methods(http.MethodDelete)

	trackRouter := r.PathPrefix("/track").Subrouter()
	trackRouter.HandleFunc("/shipment_details/{trackingNumber}", s.handleTrackShipment).Methods(http.MethodGet)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]interface{}{
		"message":   "Tracking API is running",
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

// writeError maps the domain error taxonomy onto HTTP statuses. A
// failed request never crashes the process; unknown errors become a
// generic 500 without leaking internals.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		s.respond(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "Missing required fields",
			"fields":  ve.Fields,
		})
	case errors.Is(err, domain.ErrInvalidCredentials):
		s.respond(w, http.StatusUnauthorized, errBody("Invalid credentials."))
	case errors.Is(err, domain.ErrUnauthenticated):
		s.respond(w, http.StatusUnauthorized, errBody("Access denied. No token provided."))
	case errors.Is(err, domain.ErrTokenExpired), errors.Is(err, domain.ErrTokenInvalid):
		s.respond(w, http.StatusForbidden, errBody("Invalid or expired token."))
	case errors.Is(err, domain.ErrNotFound):
		s.respond(w, http.StatusNotFound, errBody("Shipment not found"))
	case errors.Is(err, domain.ErrDuplicateTrackingNumber):
		s.respond(w, http.StatusConflict, errBody("Tracking number already exists"))
	case errors.Is(err, domain.ErrAlreadyConfirmed):
		s.respond(w, http.StatusConflict, errBody("Shipment already confirmed"))
	default:
		s.logger.Error("request failed", zap.Error(err))
		s.respond(w, http.StatusInternalServerError, errBody("Internal server error. Please try again later."))
	}
}

func errBody(message string) map[string]interface{} {
	return map[string]interface{}{"success": false, "message": message}
}

// sessionToken pulls the token from the cookie, falling back to a
// bearer header.
func sessionToken(r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	header := r.Header.Get("Authorization")
	if len(header) > 7 && header[:7] == "Bearer " {
		return header[7:]
	}
	return ""
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(auth.SessionTTL / time.Second),
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}
