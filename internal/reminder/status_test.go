package reminder

import (
	"testing"
	"time"

	"family-records-api/internal/domain/entity"
)

var testNow = time.Date(2026, time.September, 1, 12, 30, 0, 0, time.UTC)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		expiry string
		want   Status
	}{
		{"no date tracked", "", StatusNoExpiry},
		{"unparseable date", "sometime next year", StatusNoExpiry},
		{"well past", "2020-01-01", StatusExpired},
		{"yesterday", "2026-08-31", StatusExpired},
		{"today counts until end of day", "2026-09-01", StatusExpiringSoon},
		{"within the window", "2026-09-15", StatusExpiringSoon},
		{"last day inside the window", "2026-09-30", StatusExpiringSoon},
		{"just outside the window", "2026-10-01", StatusActive},
		{"far future", "2027-09-01", StatusActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(testNow, tt.expiry)
			if got != tt.want {
				t.Fatalf("Classify(%q) = %q, want %q", tt.expiry, got, tt.want)
			}
		})
	}
}

func TestClassifyAtBoundaries(t *testing.T) {
	today := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	if got := classifyAt(today, today.Add(expiringSoonWindow)); got != StatusExpiringSoon {
		t.Fatalf("exactly at window = %q, want %q", got, StatusExpiringSoon)
	}
	if got := classifyAt(today, today.Add(expiringSoonWindow+time.Millisecond)); got != StatusActive {
		t.Fatalf("one millisecond past window = %q, want %q", got, StatusActive)
	}
	if got := classifyAt(today, today); got != StatusExpiringSoon {
		t.Fatalf("expiry at today midnight = %q, want %q", got, StatusExpiringSoon)
	}
	if got := classifyAt(today, today.Add(-time.Millisecond)); got != StatusExpired {
		t.Fatalf("one millisecond before today = %q, want %q", got, StatusExpired)
	}
}

func TestStatusNeedsAttention(t *testing.T) {
	attention := map[Status]bool{
		StatusNoExpiry:     false,
		StatusActive:       false,
		StatusExpiringSoon: true,
		StatusExpired:      true,
	}
	for status, want := range attention {
		if got := status.NeedsAttention(); got != want {
			t.Fatalf("%q.NeedsAttention() = %v, want %v", status, got, want)
		}
	}
}

func TestVehicleNeedsAttention(t *testing.T) {
	healthy := &entity.Vehicle{
		Documents: []entity.VehicleDocument{
			{Name: entity.VehicleDocInsurance, ExpiryDate: "2027-06-01"},
			{Name: entity.VehicleDocRC, ValidUntilDate: "2040-01-01"},
		},
	}
	if VehicleNeedsAttention(testNow, healthy) {
		t.Fatalf("healthy vehicle flagged as needing attention")
	}

	lapsed := &entity.Vehicle{
		Documents: []entity.VehicleDocument{
			{Name: entity.VehicleDocInsurance, ExpiryDate: "2027-06-01"},
			{Name: entity.VehicleDocPUC, ExpiryDate: "2026-07-01"},
		},
	}
	if !VehicleNeedsAttention(testNow, lapsed) {
		t.Fatalf("vehicle with lapsed PUC not flagged")
	}

	// RC status is read from its valid-until date, not ExpiryDate.
	oldRC := &entity.Vehicle{
		Documents: []entity.VehicleDocument{
			{Name: entity.VehicleDocRC, ValidUntilDate: "2026-08-01"},
		},
	}
	if !VehicleNeedsAttention(testNow, oldRC) {
		t.Fatalf("vehicle with expired RC not flagged")
	}

	if VehicleNeedsAttention(testNow, &entity.Vehicle{}) {
		t.Fatalf("vehicle without papers flagged")
	}
}
