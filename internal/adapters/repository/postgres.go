// internal/adapters/repository/postgres.go
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/velizon/tracking-api/internal/domain"
	"github.com/velizon/tracking-api/internal/ports"
)

const uniqueViolation = "23505"

const shipmentColumns = `id, tracking_number, shipment_id, sender_name, sender_address, sender_email, sender_phone,
	receiver_name, receiver_address, receiver_phone, receiver_email, receiver_country,
	origin_country, origin_location, destination_country, destination_location, current_location,
	shipment_status, shipment_type, weight, expected_delivery, dimensions, contents, custom_status, remarks,
	qr_code, created_at, updated_at, last_update`

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var _ ports.AdminRepositoryPort = (*PostgresRepository)(nil)
var _ ports.ShipmentRepositoryPort = (*PostgresRepository)(nil)

func (r *PostgresRepository) FindAdminByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	admin := &domain.Admin{}
	var lastLogin sql.NullTime
	err := r.db.QueryRowContext(ctx,
		"SELECT id, email, name, password, is_admin, is_owner, last_login FROM admins WHERE LOWER(email) = LOWER($1) AND is_admin = true",
		email,
	).Scan(&admin.ID, &admin.Email, &admin.Name, &admin.Password, &admin.IsAdmin, &admin.IsOwner, &lastLogin)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if lastLogin.Valid {
		admin.LastLogin = &lastLogin.Time
	}
	return admin, nil
}

func (r *PostgresRepository) FindAdminByID(ctx context.Context, id int64) (*domain.Admin, error) {
	admin := &domain.Admin{}
	var lastLogin sql.NullTime
	err := r.db.QueryRowContext(ctx,
		"SELECT id, email, name, password, is_admin, is_owner, last_login FROM admins WHERE id = $1",
		id,
	).Scan(&admin.ID, &admin.Email, &admin.Name, &admin.Password, &admin.IsAdmin, &admin.IsOwner, &lastLogin)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if lastLogin.Valid {
		admin.LastLogin = &lastLogin.Time
	}
	return admin, nil
}

func (r *PostgresRepository) TouchLastLogin(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "UPDATE admins SET last_login = NOW() WHERE id = $1", id)
	return err
}

func (r *PostgresRepository) CreateShipment(ctx context.Context, s *domain.Shipment) (*domain.Shipment, error) {
	query := `
		INSERT INTO shipments (
			tracking_number, shipment_id, sender_name, sender_address, sender_email, sender_phone,
			receiver_name, receiver_address, receiver_phone, receiver_email, receiver_country,
			origin_country, origin_location, destination_country, destination_location, current_location,
			shipment_status, shipment_type, weight, expected_delivery, dimensions, contents, custom_status, remarks,
			qr_code, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)
		RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		s.TrackingNumber, s.ShipmentID, s.SenderName, s.SenderAddress, s.SenderEmail, s.SenderPhone,
		s.ReceiverName, s.ReceiverAddress, s.ReceiverPhone, s.ReceiverEmail, s.ReceiverCountry,
		s.OriginCountry, s.OriginLocation, s.DestinationCountry, s.DestinationLocation, s.CurrentLocation,
		s.Status, s.ShipmentType, s.Weight, s.ExpectedDelivery, s.Dimensions, s.Contents, s.CustomStatus, s.Remarks,
		s.QRCode, s.CreatedAt, s.UpdatedAt,
	).Scan(&s.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return nil, domain.ErrDuplicateTrackingNumber
		}
		return nil, err
	}
	return s, nil
}

func (r *PostgresRepository) FindByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Shipment, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+shipmentColumns+" FROM shipments WHERE tracking_number = $1", trackingNumber)
	s, err := scanShipment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return s, err
}

func (r *PostgresRepository) FindByShipmentID(ctx context.Context, shipmentID string) (*domain.Shipment, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+shipmentColumns+" FROM shipments WHERE shipment_id = $1", shipmentID)
	s, err := scanShipment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return s, err
}

func (r *PostgresRepository) ListShipments(ctx context.Context) ([]*domain.Shipment, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+shipmentColumns+" FROM shipments ORDER BY shipment_id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shipments []*domain.Shipment
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}
	return shipments, rows.Err()
}

// updatableColumns maps ShipmentUpdate fields onto their columns.
// tracking_number, shipment_id and qr_code never appear here.
func (r *PostgresRepository) UpdateShipment(ctx context.Context, shipmentID string, upd *domain.ShipmentUpdate) (*domain.Shipment, error) {
	set := []string{}
	args := []interface{}{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	strFields := []struct {
		column string
		value  *string
	}{
		{"sender_name", upd.SenderName},
		{"sender_address", upd.SenderAddress},
		{"sender_email", upd.SenderEmail},
		{"sender_phone", upd.SenderPhone},
		{"receiver_name", upd.ReceiverName},
		{"receiver_address", upd.ReceiverAddress},
		{"receiver_phone", upd.ReceiverPhone},
		{"receiver_email", upd.ReceiverEmail},
		{"receiver_country", upd.ReceiverCountry},
		{"origin_country", upd.OriginCountry},
		{"origin_location", upd.OriginLocation},
		{"destination_country", upd.DestinationCountry},
		{"destination_location", upd.DestinationLocation},
		{"current_location", upd.CurrentLocation},
		{"shipment_status", upd.Status},
		{"shipment_type", upd.ShipmentType},
		{"weight", upd.Weight},
		{"dimensions", upd.Dimensions},
		{"contents", upd.Contents},
		{"custom_status", upd.CustomStatus},
		{"remarks", upd.Remarks},
	}
	for _, f := range strFields {
		if f.value != nil {
			add(f.column, *f.value)
		}
	}
	if upd.ExpectedDelivery != nil {
		add("expected_delivery", *upd.ExpectedDelivery)
	}
	set = append(set, "updated_at = NOW()", "last_update = NOW()")

	args = append(args, shipmentID)
	query := fmt.Sprintf("UPDATE shipments SET %s WHERE shipment_id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), shipmentColumns)

	s, err := scanShipment(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	return s, err
}

// ConfirmDelivery is the one constrained transition. The status check
// and the write are a single statement, so two racing confirmations
// cannot both succeed: the loser scans no row and is classified below.
func (r *PostgresRepository) ConfirmDelivery(ctx context.Context, trackingNumber string) (*domain.Shipment, error) {
	query := fmt.Sprintf(`UPDATE shipments
		SET shipment_status = $1, updated_at = NOW(), last_update = NOW()
		WHERE tracking_number = $2 AND shipment_status <> $1
		RETURNING %s`, shipmentColumns)

	s, err := scanShipment(r.db.QueryRowContext(ctx, query, domain.TerminalStatus, trackingNumber))
	if err == sql.ErrNoRows {
		var exists bool
		if err := r.db.QueryRowContext(ctx,
			"SELECT EXISTS (SELECT 1 FROM shipments WHERE tracking_number = $1)", trackingNumber,
		).Scan(&exists); err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrAlreadyConfirmed
		}
		return nil, domain.ErrNotFound
	}
	return s, err
}

func (r *PostgresRepository) DeleteShipment(ctx context.Context, shipmentID string) (*domain.Shipment, error) {
	query := "DELETE FROM shipments WHERE shipment_id = $1 RETURNING " + shipmentColumns
	s, err := scanShipment(r.db.QueryRowContext(ctx, query, shipmentID))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	return s, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanShipment(row rowScanner) (*domain.Shipment, error) {
	s := &domain.Shipment{}
	var lastUpdate sql.NullTime
	err := row.Scan(
		&s.ID, &s.TrackingNumber, &s.ShipmentID, &s.SenderName, &s.SenderAddress, &s.SenderEmail, &s.SenderPhone,
		&s.ReceiverName, &s.ReceiverAddress, &s.ReceiverPhone, &s.ReceiverEmail, &s.ReceiverCountry,
		&s.OriginCountry, &s.OriginLocation, &s.DestinationCountry, &s.DestinationLocation, &s.CurrentLocation,
		&s.Status, &s.ShipmentType, &s.Weight, &s.ExpectedDelivery, &s.Dimensions, &s.Contents, &s.CustomStatus, &s.Remarks,
		&s.QRCode, &s.CreatedAt, &s.UpdatedAt, &lastUpdate,
	)
	if err != nil {
		return nil, err
	}
	if lastUpdate.Valid {
		s.LastUpdate = &lastUpdate.Time
	}
	return s, nil
}
