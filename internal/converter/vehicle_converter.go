package converter

import (
	"time"

	"family-records-api/internal/delivery/dto"
	"family-records-api/internal/domain/entity"
	"family-records-api/internal/reminder"
)

// VehicleToResponse converts a Vehicle entity (with its papers loaded) to
// its DTO, attaching per-document classifier status and the card-level
// needs-attention flag.
func VehicleToResponse(now time.Time, vehicle *entity.Vehicle) *dto.VehicleResponse {
	if vehicle == nil {
		return nil
	}

	docs := make([]dto.VehicleDocumentResponse, len(vehicle.Documents))
	for i, doc := range vehicle.Documents {
		docs[i] = dto.VehicleDocumentResponse{
			ID:             doc.ID,
			Name:           doc.Name,
			ExpiryDate:     doc.ExpiryDate,
			ValidUntilDate: doc.ValidUntilDate,
			FileRef:        doc.FileRef,
			Amount:         doc.Amount,
			Status:         string(reminder.Classify(now, doc.TrackedDate())),
		}
	}

	return &dto.VehicleResponse{
		ID:             vehicle.ID,
		Type:           string(vehicle.Type),
		Name:           vehicle.Name,
		Model:          vehicle.Model,
		Number:         vehicle.Number,
		Documents:      docs,
		NeedsAttention: reminder.VehicleNeedsAttention(now, vehicle),
		CreatedAt:      vehicle.CreatedAt,
		UpdatedAt:      vehicle.UpdatedAt,
	}
}

func VehiclesToListResponse(now time.Time, vehicles []entity.Vehicle) *dto.VehicleListResponse {
	responses := make([]dto.VehicleResponse, len(vehicles))
	for i := range vehicles {
		responses[i] = *VehicleToResponse(now, &vehicles[i])
	}
	return &dto.VehicleListResponse{
		Vehicles: responses,
		Total:    len(responses),
	}
}
