// internal/adapters/httpserver/server_test.go
package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/velizon/tracking-api/internal/application"
	"github.com/velizon/tracking-api/internal/domain"
	"github.com/velizon/tracking-api/internal/ports"
	"github.com/velizon/tracking-api/pkg/auth"
)

type nopCache struct{}

func (nopCache) Get(ctx context.Context, key string) ([]byte, error) { return nil, errors.New("miss") }
func (nopCache) Set(ctx context.Context, key string, value interface{}) error { return nil }
func (nopCache) DeleteByPrefix(ctx context.Context, prefix string) error      { return nil }
func (nopCache) Ping(ctx context.Context) error                               { return nil }

type testEnv struct {
	server    *Server
	router    http.Handler
	adminRepo *ports.MockAdminRepositoryPort
	shipRepo  *ports.MockShipmentRepositoryPort
	tokens    *auth.TokenService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	adminRepo := ports.NewMockAdminRepositoryPort(ctrl)
	shipRepo := ports.NewMockShipmentRepositoryPort(ctrl)
	tokens := auth.NewTokenService("test-secret")
	logger := zap.NewNop()

	authSvc := application.NewAuthService(adminRepo, tokens, logger)
	shipmentSvc := application.NewShipmentService(shipRepo, nopCache{}, "https://velizon.test", logger)
	server := NewServer(authSvc, shipmentSvc, logger)

	return &testEnv{
		server:    server,
		router:    server.Router(),
		adminRepo: adminRepo,
		shipRepo:  shipRepo,
		tokens:    tokens,
	}
}

func (e *testEnv) sessionToken(t *testing.T) string {
	t.Helper()
	token, _, err := e.tokens.Issue(&domain.Admin{
		ID: 1, Email: "admin@example.com", Name: "Admin", IsAdmin: true,
	})
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func trackedShipment(status string) *domain.Shipment {
	return &domain.Shipment{
		ID:                 1,
		TrackingNumber:     "TRK-1",
		ShipmentID:         "123456",
		SenderName:         "Acme Ltd",
		SenderAddress:      "1 Factory Rd",
		SenderEmail:        "ops@acme.test",
		ReceiverName:       "John Doe",
		ReceiverAddress:    "2 Harbor St",
		ReceiverPhone:      "0123456789",
		ReceiverEmail:      "john@doe.test",
		ReceiverCountry:    "Germany",
		OriginCountry:      "Cameroon",
		DestinationCountry: "Germany",
		Status:             status,
		ExpectedDelivery:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	hashed, err := auth.HashPassword("securepass")
	require.NoError(t, err)
	admin := &domain.Admin{
		ID: 1, Email: "admin@example.com", Name: "Admin",
		Password: hashed, IsAdmin: true, IsOwner: true,
	}

	t.Run("success sets session cookie", func(t *testing.T) {
		env.adminRepo.EXPECT().FindAdminByEmail(gomock.Any(), "admin@example.com").Return(admin, nil)
		env.adminRepo.EXPECT().TouchLastLogin(gomock.Any(), int64(1)).Return(nil)

		rec := doJSON(t, env.router, http.MethodPost, "/auth/login", "",
			map[string]string{"email": "admin@example.com", "password": "securepass"})

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Success bool `json:"success"`
			Admin   struct {
				Email   string `json:"email"`
				IsAdmin bool   `json:"isAdmin"`
			} `json:"admin"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, "admin@example.com", body.Admin.Email)
		assert.True(t, body.Admin.IsAdmin)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, sessionCookie, cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
		assert.Equal(t, int(auth.SessionTTL/time.Second), cookies[0].MaxAge)
	})

	t.Run("wrong password and unknown email are identical", func(t *testing.T) {
		env.adminRepo.EXPECT().FindAdminByEmail(gomock.Any(), "admin@example.com").Return(admin, nil)
		wrongPassword := doJSON(t, env.router, http.MethodPost, "/auth/login", "",
			map[string]string{"email": "admin@example.com", "password": "wrong"})

		env.adminRepo.EXPECT().FindAdminByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)
		unknownEmail := doJSON(t, env.router, http.MethodPost, "/auth/login", "",
			map[string]string{"email": "ghost@example.com", "password": "wrong"})

		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
		assert.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := doJSON(t, env.router, http.MethodPost, "/auth/login", "",
			map[string]string{"email": "admin@example.com"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSessionEnforcement(t *testing.T) {
	env := newTestEnv(t)

	t.Run("no token", func(t *testing.T) {
		rec := doJSON(t, env.router, http.MethodGet, "/shipment/all", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := doJSON(t, env.router, http.MethodGet, "/shipment/all", "not-a-token", nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("valid token via bearer header", func(t *testing.T) {
		env.shipRepo.EXPECT().ListShipments(gomock.Any()).Return(nil, nil)
		rec := doJSON(t, env.router, http.MethodGet, "/shipment/all", env.sessionToken(t), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"shipments":[]`)
	})

	t.Run("verify returns claims", func(t *testing.T) {
		rec := doJSON(t, env.router, http.MethodGet, "/auth/verify", env.sessionToken(t), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"email":"admin@example.com"`)
	})

	t.Run("logout clears the cookie", func(t *testing.T) {
		rec := doJSON(t, env.router, http.MethodPost, "/auth/logout", env.sessionToken(t), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, sessionCookie, cookies[0].Name)
		assert.Less(t, cookies[0].MaxAge, 0)
	})

	t.Run("profile returns the stored row", func(t *testing.T) {
		env.adminRepo.EXPECT().FindAdminByID(gomock.Any(), int64(1)).
			Return(&domain.Admin{ID: 1, Email: "admin@example.com", Name: "Admin", IsAdmin: true}, nil)
		rec := doJSON(t, env.router, http.MethodGet, "/auth/profile", env.sessionToken(t), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"email":"admin@example.com"`)
	})
}

// Full lifecycle: create, public lookup, confirm, repeat confirm.
func TestShipmentLifecycle(t *testing.T) {
	env := newTestEnv(t)
	token := env.sessionToken(t)

	createBody := map[string]string{
		"tracking_number":     "TRK-1",
		"sender_name":         "Acme Ltd",
		"sender_address":      "1 Factory Rd",
		"sender_email":        "ops@acme.test",
		"receiver_name":       "John Doe",
		"receiver_address":    "2 Harbor St",
		"receiver_phone":      "0123456789",
		"receiver_email":      "john@doe.test",
		"receiver_country":    "Germany",
		"origin_country":      "Cameroon",
		"destination_country": "Germany",
		"shipment_status":     "In Transit",
		"expected_delivery":   "2026-10-01",
	}

	env.shipRepo.EXPECT().CreateShipment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *domain.Shipment) (*domain.Shipment, error) {
			s.ID = 1
			return s, nil
		})
	rec := doJSON(t, env.router, http.MethodPost, "/shipment/add_shipment", token, createBody)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"tracking_number":"TRK-1"`)

	env.shipRepo.EXPECT().FindByTrackingNumber(gomock.Any(), "TRK-1").
		Return(trackedShipment("In Transit"), nil)
	rec = doJSON(t, env.router, http.MethodGet, "/track/shipment_details/TRK-1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"shipment_status":"In Transit"`)

	proof := map[string]string{
		"recipient_name":     "John Doe",
		"signature_data":     "data:image/png;base64,abcd",
		"delivery_timestamp": "2026-10-01T10:00:00Z",
	}
	env.shipRepo.EXPECT().ConfirmDelivery(gomock.Any(), "TRK-1").
		Return(trackedShipment(domain.TerminalStatus), nil)
	rec = doJSON(t, env.router, http.MethodPut, "/shipment/confirm-delivery/TRK-1", token, proof)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), domain.TerminalStatus)

	env.shipRepo.EXPECT().ConfirmDelivery(gomock.Any(), "TRK-1").
		Return(nil, domain.ErrAlreadyConfirmed)
	rec = doJSON(t, env.router, http.MethodPut, "/shipment/confirm-delivery/TRK-1", token, proof)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestShipmentErrors(t *testing.T) {
	env := newTestEnv(t)
	token := env.sessionToken(t)

	t.Run("duplicate tracking number", func(t *testing.T) {
		env.shipRepo.EXPECT().CreateShipment(gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrDuplicateTrackingNumber)
		rec := doJSON(t, env.router, http.MethodPost, "/shipment/add_shipment", token, map[string]string{
			"tracking_number":     "TRK-1",
			"sender_name":         "Acme Ltd",
			"sender_address":      "1 Factory Rd",
			"sender_email":        "ops@acme.test",
			"receiver_name":       "John Doe",
			"receiver_address":    "2 Harbor St",
			"receiver_phone":      "0123456789",
			"receiver_email":      "john@doe.test",
			"receiver_country":    "Germany",
			"origin_country":      "Cameroon",
			"destination_country": "Germany",
			"shipment_status":     "In Transit",
			"expected_delivery":   "2026-10-01",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("create with missing fields lists them", func(t *testing.T) {
		rec := doJSON(t, env.router, http.MethodPost, "/shipment/add_shipment", token,
			map[string]string{"tracking_number": "TRK-2"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "receiver_name")
		assert.Contains(t, rec.Body.String(), "expected_delivery")
	})

	t.Run("confirm with missing proof", func(t *testing.T) {
		rec := doJSON(t, env.router, http.MethodPut, "/shipment/confirm-delivery/TRK-1", token,
			map[string]string{"delivery_timestamp": "2026-10-01T10:00:00Z"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "recipient_name")
		assert.Contains(t, rec.Body.String(), "signature_data")
	})

	t.Run("update unknown shipment", func(t *testing.T) {
		env.shipRepo.EXPECT().UpdateShipment(gomock.Any(), "000000", gomock.Any()).
			Return(nil, domain.ErrNotFound)
		rec := doJSON(t, env.router, http.MethodPut, "/shipment/update/000000", token,
			map[string]string{"current_location": "Hamburg Port"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("delete unknown shipment", func(t *testing.T) {
		env.shipRepo.EXPECT().DeleteShipment(gomock.Any(), "000000").
			Return(nil, domain.ErrNotFound)
		rec := doJSON(t, env.router, http.MethodDelete, "/shipment/delete/000000", token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("track unknown shipment", func(t *testing.T) {
		env.shipRepo.EXPECT().FindByTrackingNumber(gomock.Any(), "TRK-404").Return(nil, nil)
		rec := doJSON(t, env.router, http.MethodGet, "/track/shipment_details/TRK-404", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	rec := doJSON(t, env.router, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}
