package handler

import (
	"encoding/json"
	"net/http"

	"family-records-api/internal/delivery/dto"
	"family-records-api/internal/delivery/http/middleware"
	"family-records-api/internal/usecase"
	"family-records-api/pkg/response"
	"family-records-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type HealthRecordHandler struct {
	healthUsecase usecase.HealthRecordUsecase
	validator     *validator.CustomValidator
}

func NewHealthRecordHandler(healthUsecase usecase.HealthRecordUsecase, validator *validator.CustomValidator) *HealthRecordHandler {
	return &HealthRecordHandler{
		healthUsecase: healthUsecase,
		validator:     validator,
	}
}

func (h *HealthRecordHandler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateHealthRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.healthUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrMemberNotFound:
			response.Error(w, http.StatusBadRequest, "Family member not found", nil)
		default:
			response.InternalServerError(w, "Failed to create health record")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Health record created successfully", record)
}

func (h *HealthRecordHandler) GetAllRecords(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	records, err := h.healthUsecase.GetAll(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get health records")
		return
	}

	response.Success(w, http.StatusOK, "Health records retrieved successfully", records)
}

func (h *HealthRecordHandler) GetRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	recordID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	record, err := h.healthUsecase.GetByID(r.Context(), userID, recordID)
	if err != nil {
		if err == usecase.ErrHealthRecordNotFound {
			response.NotFound(w, "Health record not found")
			return
		}
		response.InternalServerError(w, "Failed to get health record")
		return
	}

	response.Success(w, http.StatusOK, "Health record retrieved successfully", record)
}

func (h *HealthRecordHandler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	recordID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	var req dto.UpdateHealthRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.healthUsecase.Update(r.Context(), userID, recordID, &req)
	if err != nil {
		switch err {
		case usecase.ErrHealthRecordNotFound:
			response.NotFound(w, "Health record not found")
		case usecase.ErrMemberNotFound:
			response.Error(w, http.StatusBadRequest, "Family member not found", nil)
		default:
			response.InternalServerError(w, "Failed to update health record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Health record updated successfully", record)
}

func (h *HealthRecordHandler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	recordID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	if err := h.healthUsecase.Delete(r.Context(), userID, recordID); err != nil {
		switch err {
		case usecase.ErrHealthRecordNotFound:
			response.NotFound(w, "Health record not found")
		default:
			response.InternalServerError(w, "Failed to delete health record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Health record deleted successfully", nil)
}
