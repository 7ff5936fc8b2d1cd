// pkg/qr/qr_test.go
package qr

import (
	"strings"
	"testing"
)

func TestTrackingURL(t *testing.T) {
	got := TrackingURL("https://velizon.test", "TRK-1")
	if got != "https://velizon.test?tracking=TRK-1" {
		t.Errorf("TrackingURL() = %s", got)
	}
}

func TestPayload(t *testing.T) {
	a, err := Payload("https://velizon.test", "TRK-1")
	if err != nil {
		t.Fatalf("Payload() error: %v", err)
	}
	if !strings.HasPrefix(a, "data:image/png;base64,") {
		t.Error("payload is not a PNG data URL")
	}

	// Same tracking number, same payload: it is derived, not random.
	b, err := Payload("https://velizon.test", "TRK-1")
	if err != nil {
		t.Fatalf("Payload() error: %v", err)
	}
	if a != b {
		t.Error("payload is not deterministic for the same tracking number")
	}

	c, err := Payload("https://velizon.test", "TRK-2")
	if err != nil {
		t.Fatalf("Payload() error: %v", err)
	}
	if a == c {
		t.Error("distinct tracking numbers produced the same payload")
	}
}
