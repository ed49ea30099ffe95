package dto

// Request DTOs

type CreateDocumentTypeRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty"`
}

type CreateBloodGroupRequest struct {
	Name string `json:"name" validate:"required,min=1,max=10"`
}

// Response DTOs

type DocumentTypeResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type BloodGroupResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type DocumentTypeListResponse struct {
	Types []DocumentTypeResponse `json:"types"`
	Total int                    `json:"total"`
}

type BloodGroupListResponse struct {
	Groups []BloodGroupResponse `json:"groups"`
	Total  int                  `json:"total"`
}
