package converter

import (
	"family-records-api/internal/delivery/dto"
	"family-records-api/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO.
// Includes the role name when the Role relation is loaded.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role.RoleName,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// UsersToListResponse converts a slice of users to the admin list DTO.
func UsersToListResponse(users []entity.User) *dto.UserListResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i])
	}
	return &dto.UserListResponse{
		Users: responses,
		Total: len(responses),
	}
}
