package converter

import (
	"family-records-api/internal/delivery/dto"
	"family-records-api/internal/domain/entity"
)

func HealthRecordToResponse(record *entity.HealthRecord) *dto.HealthRecordResponse {
	if record == nil {
		return nil
	}
	return &dto.HealthRecordResponse{
		ID:         record.ID,
		MemberID:   record.MemberID,
		PersonName: record.PersonName,
		Type:       string(record.Type),
		Title:      record.Title,
		RecordDate: record.RecordDate,
		Status:     string(record.Status),
		Notes:      record.Notes,
		CreatedAt:  record.CreatedAt,
		UpdatedAt:  record.UpdatedAt,
	}
}

func HealthRecordsToListResponse(records []entity.HealthRecord) *dto.HealthRecordListResponse {
	responses := make([]dto.HealthRecordResponse, len(records))
	for i := range records {
		responses[i] = *HealthRecordToResponse(&records[i])
	}
	return &dto.HealthRecordListResponse{
		Records: responses,
		Total:   len(responses),
	}
}
