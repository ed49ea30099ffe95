package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type VehicleDocumentRequest struct {
	Name           string          `json:"name" validate:"required,oneof=Insurance PUC 'Registration Certificate'"`
	ExpiryDate     string          `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
	ValidUntilDate string          `json:"valid_until_date" validate:"omitempty,datetime=2006-01-02"`
	FileRef        string          `json:"file_ref" validate:"omitempty"`
	Amount         decimal.Decimal `json:"amount"`
}

type CreateVehicleRequest struct {
	Type      string                   `json:"type" validate:"required,oneof=car bike truck"`
	Name      string                   `json:"name" validate:"required,min=1,max=255"`
	Model     string                   `json:"model" validate:"omitempty,max=255"`
	Number    string                   `json:"number" validate:"omitempty,max=50"`
	Documents []VehicleDocumentRequest `json:"documents" validate:"omitempty,max=3,dive"`
}

type UpdateVehicleRequest struct {
	Type      string                   `json:"type" validate:"omitempty,oneof=car bike truck"`
	Name      string                   `json:"name" validate:"omitempty,min=1,max=255"`
	Model     string                   `json:"model" validate:"omitempty,max=255"`
	Number    string                   `json:"number" validate:"omitempty,max=50"`
	Documents []VehicleDocumentRequest `json:"documents" validate:"omitempty,max=3,dive"`
}

// Response DTOs

type VehicleDocumentResponse struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	ExpiryDate     string          `json:"expiry_date,omitempty"`
	ValidUntilDate string          `json:"valid_until_date,omitempty"`
	FileRef        string          `json:"file_ref,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Status         string          `json:"status"`
}

type VehicleResponse struct {
	ID             uuid.UUID                 `json:"id"`
	Type           string                    `json:"type"`
	Name           string                    `json:"name"`
	Model          string                    `json:"model,omitempty"`
	Number         string                    `json:"number,omitempty"`
	Documents      []VehicleDocumentResponse `json:"documents"`
	NeedsAttention bool                      `json:"needs_attention"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      time.Time                 `json:"updated_at"`
}

type VehicleListResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
	Total    int               `json:"total"`
}
