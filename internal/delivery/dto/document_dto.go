package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDocumentRequest struct {
	MemberID     *uuid.UUID `json:"member_id" validate:"omitempty"`
	PersonName   string     `json:"person_name" validate:"required,min=1,max=255"`
	Type         string     `json:"type" validate:"required,min=1,max=100"`
	Number       string     `json:"number" validate:"omitempty,max=100"`
	UploadedDate string     `json:"uploaded_date" validate:"required,datetime=2006-01-02"`
	ExpiryDate   string     `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
	FileRef      string     `json:"file_ref" validate:"omitempty"`
}

type UpdateDocumentRequest struct {
	MemberID     *uuid.UUID `json:"member_id" validate:"omitempty"`
	PersonName   string     `json:"person_name" validate:"omitempty,min=1,max=255"`
	Type         string     `json:"type" validate:"omitempty,min=1,max=100"`
	Number       string     `json:"number" validate:"omitempty,max=100"`
	UploadedDate string     `json:"uploaded_date" validate:"omitempty,datetime=2006-01-02"`
	ExpiryDate   string     `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
	FileRef      string     `json:"file_ref" validate:"omitempty"`
}

// Response DTOs

type DocumentResponse struct {
	ID           uuid.UUID  `json:"id"`
	MemberID     *uuid.UUID `json:"member_id,omitempty"`
	PersonName   string     `json:"person_name"`
	Type         string     `json:"type"`
	Number       string     `json:"number,omitempty"`
	UploadedDate string     `json:"uploaded_date"`
	ExpiryDate   string     `json:"expiry_date,omitempty"`
	FileRef      string     `json:"file_ref,omitempty"`
	Status       string     `json:"status"`
	DaysUntilDue *int       `json:"days_until_due,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type DocumentListResponse struct {
	Documents []DocumentResponse `json:"documents"`
	Total     int                `json:"total"`
}
