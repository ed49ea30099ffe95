package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateHealthRecordRequest struct {
	MemberID   *uuid.UUID `json:"member_id" validate:"omitempty"`
	PersonName string     `json:"person_name" validate:"required,min=1,max=255"`
	Type       string     `json:"type" validate:"required,oneof=Condition Medication Procedure Allergy Vaccination Other"`
	Title      string     `json:"title" validate:"required,min=1,max=255"`
	RecordDate string     `json:"record_date" validate:"required,datetime=2006-01-02"`
	Status     string     `json:"status" validate:"required,oneof=Ongoing Resolved Active"`
	Notes      string     `json:"notes" validate:"omitempty"`
}

type UpdateHealthRecordRequest struct {
	MemberID   *uuid.UUID `json:"member_id" validate:"omitempty"`
	PersonName string     `json:"person_name" validate:"omitempty,min=1,max=255"`
	Type       string     `json:"type" validate:"omitempty,oneof=Condition Medication Procedure Allergy Vaccination Other"`
	Title      string     `json:"title" validate:"omitempty,min=1,max=255"`
	RecordDate string     `json:"record_date" validate:"omitempty,datetime=2006-01-02"`
	Status     string     `json:"status" validate:"omitempty,oneof=Ongoing Resolved Active"`
	Notes      string     `json:"notes" validate:"omitempty"`
}

// Response DTOs

type HealthRecordResponse struct {
	ID         uuid.UUID  `json:"id"`
	MemberID   *uuid.UUID `json:"member_id,omitempty"`
	PersonName string     `json:"person_name"`
	Type       string     `json:"type"`
	Title      string     `json:"title"`
	RecordDate string     `json:"record_date"`
	Status     string     `json:"status"`
	Notes      string     `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type HealthRecordListResponse struct {
	Records []HealthRecordResponse `json:"records"`
	Total   int                    `json:"total"`
}
