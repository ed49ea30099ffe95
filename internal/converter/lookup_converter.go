package converter

import (
	"family-records-api/internal/delivery/dto"
	"family-records-api/internal/domain/entity"
)

func DocumentTypeToResponse(dt *entity.DocumentType) *dto.DocumentTypeResponse {
	if dt == nil {
		return nil
	}
	return &dto.DocumentTypeResponse{
		ID:          dt.ID,
		Name:        dt.Name,
		Description: dt.Description,
	}
}

func DocumentTypesToListResponse(types []entity.DocumentType) *dto.DocumentTypeListResponse {
	responses := make([]dto.DocumentTypeResponse, len(types))
	for i := range types {
		responses[i] = *DocumentTypeToResponse(&types[i])
	}
	return &dto.DocumentTypeListResponse{
		Types: responses,
		Total: len(responses),
	}
}

func BloodGroupToResponse(bg *entity.BloodGroup) *dto.BloodGroupResponse {
	if bg == nil {
		return nil
	}
	return &dto.BloodGroupResponse{
		ID:   bg.ID,
		Name: bg.Name,
	}
}

func BloodGroupsToListResponse(groups []entity.BloodGroup) *dto.BloodGroupListResponse {
	responses := make([]dto.BloodGroupResponse, len(groups))
	for i := range groups {
		responses[i] = *BloodGroupToResponse(&groups[i])
	}
	return &dto.BloodGroupListResponse{
		Groups: responses,
		Total:  len(responses),
	}
}
