// internal/application/shipment_service.go
package application

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/velizon/tracking-api/internal/domain"
	"github.com/velizon/tracking-api/internal/ports"
	"github.com/velizon/tracking-api/pkg/qr"
)

const (
	cachePrefix   = "shipments:"
	cacheKeyAll   = cachePrefix + "all"
	cacheKeyTrack = cachePrefix + "track:"
)

type ShipmentService struct {
	repo        ports.ShipmentRepositoryPort
	cache       ports.CachePort
	frontendURL string
	logger      *zap.Logger
}

func NewShipmentService(repo ports.ShipmentRepositoryPort, cache ports.CachePort, frontendURL string, logger *zap.Logger) *ShipmentService {
	return &ShipmentService{repo: repo, cache: cache, frontendURL: frontendURL, logger: logger}
}

// newShipmentID generates the 6-digit administrative identifier. The
// generator does not deduplicate; the store tolerates collisions.
func newShipmentID() string {
	return fmt.Sprintf("%d", 100000+rand.IntN(900000))
}

// Create validates required fields, assigns the generated shipment id
// and the QR payload, and persists the record. The QR payload is
// derived from the tracking number exactly once, here.
func (s *ShipmentService) Create(ctx context.Context, sh *domain.Shipment) (*domain.Shipment, error) {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"tracking_number", sh.TrackingNumber},
		{"sender_name", sh.SenderName},
		{"sender_address", sh.SenderAddress},
		{"sender_email", sh.SenderEmail},
		{"receiver_name", sh.ReceiverName},
		{"receiver_address", sh.ReceiverAddress},
		{"receiver_phone", sh.ReceiverPhone},
		{"receiver_email", sh.ReceiverEmail},
		{"receiver_country", sh.ReceiverCountry},
		{"origin_country", sh.OriginCountry},
		{"destination_country", sh.DestinationCountry},
		{"shipment_status", sh.Status},
	}
	for _, f := range required {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if sh.ExpectedDelivery.IsZero() {
		missing = append(missing, "expected_delivery")
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError(missing...)
	}

	sh.ShipmentID = newShipmentID()
	payload, err := qr.Payload(s.frontendURL, sh.TrackingNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to generate qr payload: %w", err)
	}
	sh.QRCode = payload

	now := time.Now()
	sh.CreatedAt = now
	sh.UpdatedAt = now

	created, err := s.repo.CreateShipment(ctx, sh)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	s.logger.Info("shipment created",
		zap.String("tracking_number", created.TrackingNumber),
		zap.String("shipment_id", created.ShipmentID))
	return created, nil
}

// Get looks a shipment up by tracking number, read-through cached.
func (s *ShipmentService) Get(ctx context.Context, trackingNumber string) (*domain.Shipment, error) {
	key := cacheKeyTrack + trackingNumber
	if data, err := s.cache.Get(ctx, key); err == nil {
		var cached domain.Shipment
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	sh, err := s.repo.FindByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}
	if sh == nil {
		return nil, domain.ErrNotFound
	}
	if err := s.cache.Set(ctx, key, sh); err != nil {
		s.logger.Warn("failed to cache shipment", zap.String("key", key), zap.Error(err))
	}
	return sh, nil
}

// ListAll returns every shipment ordered by shipment_id descending.
func (s *ShipmentService) ListAll(ctx context.Context) ([]*domain.Shipment, error) {
	if data, err := s.cache.Get(ctx, cacheKeyAll); err == nil {
		var cached []*domain.Shipment
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	shipments, err := s.repo.ListShipments(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, cacheKeyAll, shipments); err != nil {
		s.logger.Warn("failed to cache shipment list", zap.Error(err))
	}
	return shipments, nil
}

// Update applies a partial field set. The immutable columns have no
// representation in ShipmentUpdate, so they cannot change here.
func (s *ShipmentService) Update(ctx context.Context, shipmentID string, upd *domain.ShipmentUpdate) (*domain.Shipment, error) {
	updated, err := s.repo.UpdateShipment(ctx, shipmentID, upd)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return updated, nil
}

// ConfirmDelivery moves a shipment into the terminal status. The
// write is a single conditional update in the store, so of two racing
// confirmations exactly one succeeds and the other sees
// ErrAlreadyConfirmed. Proof is validated for presence only.
func (s *ShipmentService) ConfirmDelivery(ctx context.Context, trackingNumber string, proof *domain.DeliveryProof) (*domain.Shipment, error) {
	var missing []string
	if proof == nil || proof.RecipientName == "" {
		missing = append(missing, "recipient_name")
	}
	if proof == nil || proof.SignatureData == "" {
		missing = append(missing, "signature_data")
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError(missing...)
	}

	confirmed, err := s.repo.ConfirmDelivery(ctx, trackingNumber)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	s.logger.Info("delivery confirmed",
		zap.String("tracking_number", trackingNumber),
		zap.String("recipient", proof.RecipientName))
	return confirmed, nil
}

// Delete permanently removes a shipment and returns the removed
// snapshot. There is no soft delete.
func (s *ShipmentService) Delete(ctx context.Context, shipmentID string) (*domain.Shipment, error) {
	deleted, err := s.repo.DeleteShipment(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	s.logger.Info("shipment deleted", zap.String("shipment_id", shipmentID))
	return deleted, nil
}

func (s *ShipmentService) invalidate(ctx context.Context) {
	if err := s.cache.DeleteByPrefix(ctx, cachePrefix); err != nil {
		s.logger.Warn("failed to invalidate shipment cache", zap.Error(err))
	}
}
