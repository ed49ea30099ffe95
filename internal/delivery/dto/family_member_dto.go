package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateFamilyMemberRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=255"`
	Relation   string `json:"relation" validate:"required,min=1,max=100"`
	Age        string `json:"age" validate:"omitempty,max=50"`
	Avatar     string `json:"avatar" validate:"omitempty"`
	BloodGroup string `json:"blood_group" validate:"omitempty,max=10"`
}

type UpdateFamilyMemberRequest struct {
	Name       string `json:"name" validate:"omitempty,min=1,max=255"`
	Relation   string `json:"relation" validate:"omitempty,min=1,max=100"`
	Age        string `json:"age" validate:"omitempty,max=50"`
	Avatar     string `json:"avatar" validate:"omitempty"`
	BloodGroup string `json:"blood_group" validate:"omitempty,max=10"`
}

// Response DTOs

type FamilyMemberResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Relation   string    `json:"relation"`
	Age        string    `json:"age,omitempty"`
	Avatar     string    `json:"avatar,omitempty"`
	BloodGroup string    `json:"blood_group,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type FamilyMemberListResponse struct {
	Members []FamilyMemberResponse `json:"members"`
	Total   int                    `json:"total"`
}
