package converter

import (
	"testing"
	"time"

	"family-records-api/internal/domain/entity"
	"family-records-api/internal/reminder"

	"github.com/google/uuid"
)

var testNow = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

func TestDocumentToResponseAttachesStatus(t *testing.T) {
	doc := &entity.Document{
		ID:         uuid.New(),
		PersonName: "Asha",
		Type:       "Passport",
		ExpiryDate: "2026-09-20",
	}

	resp := DocumentToResponse(testNow, doc)
	if resp.Status != string(reminder.StatusExpiringSoon) {
		t.Fatalf("status = %q, want %q", resp.Status, reminder.StatusExpiringSoon)
	}
	if resp.DaysUntilDue == nil || *resp.DaysUntilDue != 19 {
		t.Fatalf("days until due = %v, want 19", resp.DaysUntilDue)
	}
}

func TestDocumentToResponseNoExpiry(t *testing.T) {
	doc := &entity.Document{
		ID:         uuid.New(),
		PersonName: "Asha",
		Type:       "Aadhaar",
	}

	resp := DocumentToResponse(testNow, doc)
	if resp.Status != string(reminder.StatusNoExpiry) {
		t.Fatalf("status = %q, want %q", resp.Status, reminder.StatusNoExpiry)
	}
	if resp.DaysUntilDue != nil {
		t.Fatalf("days until due = %v, want nil", *resp.DaysUntilDue)
	}
}

func TestVehicleToResponseFlagsAttention(t *testing.T) {
	vehicle := &entity.Vehicle{
		ID:   uuid.New(),
		Type: entity.VehicleTypeCar,
		Name: "Honda City",
		Documents: []entity.VehicleDocument{
			{ID: 1, Name: entity.VehicleDocInsurance, ExpiryDate: "2026-08-01"},
			{ID: 2, Name: entity.VehicleDocRC, ValidUntilDate: "2040-01-01"},
		},
	}

	resp := VehicleToResponse(testNow, vehicle)
	if !resp.NeedsAttention {
		t.Fatalf("vehicle with lapsed insurance not flagged")
	}
	if len(resp.Documents) != 2 {
		t.Fatalf("got %d documents, want 2", len(resp.Documents))
	}
	if resp.Documents[0].Status != string(reminder.StatusExpired) {
		t.Fatalf("insurance status = %q, want expired", resp.Documents[0].Status)
	}

	// RC status comes from its long-horizon valid-until date.
	if resp.Documents[1].Status != string(reminder.StatusActive) {
		t.Fatalf("RC status = %q, want active", resp.Documents[1].Status)
	}
}

func TestVehiclesToListResponseTotal(t *testing.T) {
	vehicles := []entity.Vehicle{
		{ID: uuid.New(), Name: "Honda City"},
		{ID: uuid.New(), Name: "Activa"},
	}

	resp := VehiclesToListResponse(testNow, vehicles)
	if resp.Total != 2 || len(resp.Vehicles) != 2 {
		t.Fatalf("total = %d, len = %d, want 2", resp.Total, len(resp.Vehicles))
	}
}
