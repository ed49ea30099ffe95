package converter

import (
	"time"

	"family-records-api/internal/delivery/dto"
	"family-records-api/internal/domain/entity"
	"family-records-api/internal/reminder"
)

// DocumentToResponse converts a Document entity to its DTO, attaching the
// classifier status and days-until-due computed against now.
func DocumentToResponse(now time.Time, doc *entity.Document) *dto.DocumentResponse {
	if doc == nil {
		return nil
	}

	resp := &dto.DocumentResponse{
		ID:           doc.ID,
		MemberID:     doc.MemberID,
		PersonName:   doc.PersonName,
		Type:         doc.Type,
		Number:       doc.Number,
		UploadedDate: doc.UploadedDate,
		ExpiryDate:   doc.ExpiryDate,
		FileRef:      doc.FileRef,
		Status:       string(reminder.Classify(now, doc.ExpiryDate)),
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}

	if days, ok := reminder.DaysUntil(now, doc.ExpiryDate); ok {
		resp.DaysUntilDue = &days
	}

	return resp
}

func DocumentsToListResponse(now time.Time, docs []entity.Document) *dto.DocumentListResponse {
	responses := make([]dto.DocumentResponse, len(docs))
	for i := range docs {
		responses[i] = *DocumentToResponse(now, &docs[i])
	}
	return &dto.DocumentListResponse{
		Documents: responses,
		Total:     len(responses),
	}
}
