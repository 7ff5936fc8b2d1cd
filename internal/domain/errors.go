// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors let the transport layer map internal outcomes to
// HTTP status codes without inspecting error strings.
var (
	// Auth. ErrInvalidCredentials covers both "no such admin" and
	// "wrong password" so the wire response never reveals which
	// check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")

	// Shipments.
	ErrNotFound                = errors.New("not found")
	ErrDuplicateTrackingNumber = errors.New("tracking number already exists")
	ErrAlreadyConfirmed        = errors.New("shipment already confirmed")
)

// ValidationError reports which required fields were missing or
// malformed on a client request.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
