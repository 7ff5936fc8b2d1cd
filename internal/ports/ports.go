// internal/ports/ports.go
package ports

import (
	"context"

	"github.com/velizon/tracking-api/internal/domain"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=ports

type AdminRepositoryPort interface {
	// FindAdminByEmail matches case-insensitively and only rows with
	// is_admin = true. Returns (nil, nil) when no row matches.
	FindAdminByEmail(ctx context.Context, email string) (*domain.Admin, error)
	FindAdminByID(ctx context.Context, id int64) (*domain.Admin, error)
	TouchLastLogin(ctx context.Context, id int64) error
}

type ShipmentRepositoryPort interface {
	CreateShipment(ctx context.Context, s *domain.Shipment) (*domain.Shipment, error)
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Shipment, error)
	FindByShipmentID(ctx context.Context, shipmentID string) (*domain.Shipment, error)
	ListShipments(ctx context.Context) ([]*domain.Shipment, error)
	UpdateShipment(ctx context.Context, shipmentID string, upd *domain.ShipmentUpdate) (*domain.Shipment, error)
	// ConfirmDelivery performs a single conditional write: the status
	// is set to the terminal value only if it is not already there.
	// Returns ErrAlreadyConfirmed or ErrNotFound accordingly.
	ConfirmDelivery(ctx context.Context, trackingNumber string) (*domain.Shipment, error)
	DeleteShipment(ctx context.Context, shipmentID string) (*domain.Shipment, error)
}

type CachePort interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value interface{}) error
	DeleteByPrefix(ctx context.Context, prefix string) error
	Ping(ctx context.Context) error
}
