// pkg/qr/qr.go
package qr

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// TrackingURL builds the public lookup URL a QR scan lands on.
func TrackingURL(frontendURL, trackingNumber string) string {
	return fmt.Sprintf("%s?tracking=%s", frontendURL, trackingNumber)
}

// Payload encodes the tracking URL for trackingNumber as a PNG data
// URL. Computed once at shipment creation and stored with the record.
func Payload(frontendURL, trackingNumber string) (string, error) {
	png, err := qrcode.Encode(TrackingURL(frontendURL, trackingNumber), qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
