package converter

import (
	"family-records-api/internal/delivery/dto"
	"family-records-api/internal/domain/entity"
)

func FamilyMemberToResponse(member *entity.FamilyMember) *dto.FamilyMemberResponse {
	if member == nil {
		return nil
	}

	return &dto.FamilyMemberResponse{
		ID:         member.ID,
		Name:       member.Name,
		Relation:   member.Relation,
		Age:        member.Age,
		Avatar:     member.Avatar,
		BloodGroup: member.BloodGroup,
		CreatedAt:  member.CreatedAt,
		UpdatedAt:  member.UpdatedAt,
	}
}

func FamilyMembersToListResponse(members []entity.FamilyMember) *dto.FamilyMemberListResponse {
	responses := make([]dto.FamilyMemberResponse, len(members))
	for i := range members {
		responses[i] = *FamilyMemberToResponse(&members[i])
	}
	return &dto.FamilyMemberListResponse{
		Members: responses,
		Total:   len(responses),
	}
}
