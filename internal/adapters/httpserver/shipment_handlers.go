// internal/adapters/httpserver/shipment_handlers.go
package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/velizon/tracking-api/internal/domain"
)

type addShipmentRequest struct {
	TrackingNumber      string `json:"tracking_number"`
	SenderName          string `json:"sender_name"`
	SenderAddress       string `json:"sender_address"`
	SenderEmail         string `json:"sender_email"`
	SenderPhone         string `json:"sender_phone"`
	ReceiverName        string `json:"receiver_name"`
	ReceiverAddress     string `json:"receiver_address"`
	ReceiverPhone       string `json:"receiver_phone"`
	ReceiverEmail       string `json:"receiver_email"`
	ReceiverCountry     string `json:"receiver_country"`
	OriginCountry       string `json:"origin_country"`
	OriginLocation      string `json:"origin_location"`
	DestinationCountry  string `json:"destination_country"`
	DestinationLocation string `json:"destination_location"`
	CurrentLocation     string `json:"current_location"`
	Status              string `json:"shipment_status"`
	ShipmentType        string `json:"shipment_type"`
	Weight              string `json:"weight"`
	ExpectedDelivery    string `json:"expected_delivery"`
	Dimensions          string `json:"dimensions"`
	Contents            string `json:"contents"`
	CustomStatus        string `json:"custom_status"`
	Remarks             string `json:"remarks"`
}

// parseDeliveryDate accepts the frontend's plain date and full
// timestamps alike.
func parseDeliveryDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func (s *Server) handleAddShipment(w http.ResponseWriter, r *http.Request) {
	var req addShipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respond(w, http.StatusBadRequest, errBody("Invalid request body"))
		return
	}

	var expected time.Time
	if req.ExpectedDelivery != "" {
		var err error
		expected, err = parseDeliveryDate(req.ExpectedDelivery)
		if err != nil {
			s.writeError(w, domain.NewValidationError("expected_delivery"))
			return
		}
	}

	shipment := &domain.Shipment{
		TrackingNumber:      req.TrackingNumber,
		SenderName:          req.SenderName,
		SenderAddress:       req.SenderAddress,
		SenderEmail:         req.SenderEmail,
		SenderPhone:         req.SenderPhone,
		ReceiverName:        req.ReceiverName,
		ReceiverAddress:     req.ReceiverAddress,
		ReceiverPhone:       req.ReceiverPhone,
		ReceiverEmail:       req.ReceiverEmail,
		ReceiverCountry:     req.ReceiverCountry,
		OriginCountry:       req.OriginCountry,
		OriginLocation:      req.OriginLocation,
		DestinationCountry:  req.DestinationCountry,
		DestinationLocation: req.DestinationLocation,
		CurrentLocation:     req.CurrentLocation,
		Status:              req.Status,
		ShipmentType:        req.ShipmentType,
		Weight:              req.Weight,
		ExpectedDelivery:    expected,
		Dimensions:          req.Dimensions,
		Contents:            req.Contents,
		CustomStatus:        req.CustomStatus,
		Remarks:             req.Remarks,
	}

	created, err := s.shipments.Create(r.Context(), shipment)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.respond(w, http.StatusCreated, map[string]interface{}{
		"success":  true,
		"message":  "Shipment added successfully",
		"shipment": created,
	})
}

func (s *Server) handleListShipments(w http.ResponseWriter, r *http.Request) {
	shipments, err := s.shipments.ListAll(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if shipments == nil {
		shipments = []*domain.Shipment{}
	}
	s.respond(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"shipments": shipments,
	})
}

type updateShipmentRequest struct {
	SenderName          *string `json:"sender_name"`
	SenderAddress       *string `json:"sender_address"`
	SenderEmail         *string `json:"sender_email"`
	SenderPhone         *string `json:"sender_phone"`
	ReceiverName        *string `json:"receiver_name"`
	ReceiverAddress     *string `json:"receiver_address"`
	ReceiverPhone       *string `json:"receiver_phone"`
	ReceiverEmail       *string `json:"receiver_email"`
	ReceiverCountry     *string `json:"receiver_country"`
	OriginCountry       *string `json:"origin_country"`
	OriginLocation      *string `json:"origin_location"`
	DestinationCountry  *string `json:"destination_country"`
	DestinationLocation *string `json:"destination_location"`
	CurrentLocation     *string `json:"current_location"`
	Status              *string `json:"shipment_status"`
	ShipmentType        *string `json:"shipment_type"`
	Weight              *string `json:"weight"`
	ExpectedDelivery    *string `json:"expected_delivery"`
	Dimensions          *string `json:"dimensions"`
	Contents            *string `json:"contents"`
	CustomStatus        *string `json:"custom_status"`
	Remarks             *string `json:"remarks"`
}

func (s *Server) handleUpdateShipment(w http.ResponseWriter, r *http.Request) {
	shipmentID := mux.Vars(r)["shipmentId"]

	var req updateShipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respond(w, http.StatusBadRequest, errBody("Invalid request body"))
		return
	}

	upd := &domain.ShipmentUpdate{
		SenderName:          req.SenderName,
		SenderAddress:       req.SenderAddress,
		SenderEmail:         req.SenderEmail,
		SenderPhone:         req.SenderPhone,
		ReceiverName:        req.ReceiverName,
		ReceiverAddress:     req.ReceiverAddress,
		ReceiverPhone:       req.ReceiverPhone,
		ReceiverEmail:       req.ReceiverEmail,
		ReceiverCountry:     req.ReceiverCountry,
		OriginCountry:       req.OriginCountry,
		OriginLocation:      req.OriginLocation,
		DestinationCountry:  req.DestinationCountry,
		DestinationLocation: req.DestinationLocation,
		CurrentLocation:     req.CurrentLocation,
		Status:              req.Status,
		ShipmentType:        req.ShipmentType,
		Weight:              req.Weight,
		Dimensions:          req.Dimensions,
		Contents:            req.Contents,
		CustomStatus:        req.CustomStatus,
		Remarks:             req.Remarks,
	}
	if req.ExpectedDelivery != nil {
		expected, err := parseDeliveryDate(*req.ExpectedDelivery)
		if err != nil {
			s.writeError(w, domain.NewValidationError("expected_delivery"))
			return
		}
		upd.ExpectedDelivery = &expected
	}

	updated, err := s.shipments.Update(r.Context(), shipmentID, upd)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"message":  "Shipment updated successfully",
		"shipment": updated,
	})
}

type confirmDeliveryRequest struct {
	RecipientName     string `json:"recipient_name"`
	SignatureData     string `json:"signature_data"`
	DeliveryTimestamp string `json:"delivery_timestamp"`
}

func (s *Server) handleConfirmDelivery(w http.ResponseWriter, r *http.Request) {
	trackingNumber := mux.Vars(r)["trackingNumber"]

	var req confirmDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respond(w, http.StatusBadRequest, errBody("Invalid request body"))
		return
	}

	confirmed, err := s.shipments.ConfirmDelivery(r.Context(), trackingNumber, &domain.DeliveryProof{
		RecipientName:     req.RecipientName,
		SignatureData:     req.SignatureData,
		DeliveryTimestamp: req.DeliveryTimestamp,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"message":  "Delivery confirmed successfully",
		"shipment": confirmed,
	})
}

func (s *Server) handleDeleteShipment(w http.ResponseWriter, r *http.Request) {
	shipmentID := mux.Vars(r)["shipmentId"]

	deleted, err := s.shipments.Delete(r.Context(), shipmentID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"message":          "Shipment deleted successfully",
		"deleted_shipment": deleted,
	})
}

func (s *Server) handleTrackShipment(w http.ResponseWriter, r *http.Request) {
	trackingNumber := mux.Vars(r)["trackingNumber"]

	shipment, err := s.shipments.Get(r.Context(), trackingNumber)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.respond(w, http.StatusOK, shipment)
}
