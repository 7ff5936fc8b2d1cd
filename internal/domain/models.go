// internal/domain/models.go
package domain

import "time"

// TerminalStatus is the one constrained shipment status: once a
// shipment reaches it, confirmation is no longer accepted.
const TerminalStatus = "Delivered - Confirmed"

type Admin struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Password  string     `json:"-"`
	IsAdmin   bool       `json:"is_admin"`
	IsOwner   bool       `json:"is_owner"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

type Shipment struct {
	ID                  int64      `json:"id"`
	TrackingNumber      string     `json:"tracking_number"`
	ShipmentID          string     `json:"shipment_id"`
	SenderName          string     `json:"sender_name"`
	SenderAddress       string     `json:"sender_address"`
	SenderEmail         string     `json:"sender_email"`
	SenderPhone         string     `json:"sender_phone"`
	ReceiverName        string     `json:"receiver_name"`
	ReceiverAddress     string     `json:"receiver_address"`
	ReceiverPhone       string     `json:"receiver_phone"`
	ReceiverEmail       string     `json:"receiver_email"`
	ReceiverCountry     string     `json:"receiver_country"`
	OriginCountry       string     `json:"origin_country"`
	OriginLocation      string     `json:"origin_location"`
	DestinationCountry  string     `json:"destination_country"`
	DestinationLocation string     `json:"destination_location"`
	CurrentLocation     string     `json:"current_location"`
	Status              string     `json:"shipment_status"`
	ShipmentType        string     `json:"shipment_type"`
	Weight              string     `json:"weight"`
	ExpectedDelivery    time.Time  `json:"expected_delivery"`
	Dimensions          string     `json:"dimensions"`
	Contents            string     `json:"contents"`
	CustomStatus        string     `json:"custom_status"`
	Remarks             string     `json:"remarks"`
	QRCode              string     `json:"qr_code"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
	LastUpdate          *time.Time `json:"last_update,omitempty"`
}

// DeliveryProof is the payload presented when a recipient signs for a
// shipment. The signature image is checked for presence only and is
// not persisted.
type DeliveryProof struct {
	RecipientName     string
	SignatureData     string
	DeliveryTimestamp string
}

// ShipmentUpdate carries a partial field set for an administrative
// update. Nil fields are left untouched. TrackingNumber, ShipmentID
// and QRCode are immutable and deliberately have no counterpart here.
type ShipmentUpdate struct {
	SenderName          *string
	SenderAddress       *string
	SenderEmail         *string
	SenderPhone         *string
	ReceiverName        *string
	ReceiverAddress     *string
	ReceiverPhone       *string
	ReceiverEmail       *string
	ReceiverCountry     *string
	OriginCountry       *string
	OriginLocation      *string
	DestinationCountry  *string
	DestinationLocation *string
	CurrentLocation     *string
	Status              *string
	ShipmentType        *string
	Weight              *string
	ExpectedDelivery    *time.Time
	Dimensions          *string
	Contents            *string
	CustomStatus        *string
	Remarks             *string
}
