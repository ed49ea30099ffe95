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

type VehicleHandler struct {
	vehicleUsecase usecase.VehicleUsecase
	validator      *validator.CustomValidator
}

func NewVehicleHandler(vehicleUsecase usecase.VehicleUsecase, validator *validator.CustomValidator) *VehicleHandler {
	return &VehicleHandler{
		vehicleUsecase: vehicleUsecase,
		validator:      validator,
	}
}

func (h *VehicleHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	vehicle, err := h.vehicleUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create vehicle")
		return
	}

	response.Success(w, http.StatusCreated, "Vehicle created successfully", vehicle)
}

func (h *VehicleHandler) GetAllVehicles(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vehicles, err := h.vehicleUsecase.GetAll(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get vehicles")
		return
	}

	response.Success(w, http.StatusOK, "Vehicles retrieved successfully", vehicles)
}

func (h *VehicleHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	vehicleID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid vehicle ID", nil)
		return
	}

	vehicle, err := h.vehicleUsecase.GetByID(r.Context(), userID, vehicleID)
	if err != nil {
		if err == usecase.ErrVehicleNotFound {
			response.NotFound(w, "Vehicle not found")
			return
		}
		response.InternalServerError(w, "Failed to get vehicle")
		return
	}

	response.Success(w, http.StatusOK, "Vehicle retrieved successfully", vehicle)
}

func (h *VehicleHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	vehicleID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid vehicle ID", nil)
		return
	}

	var req dto.UpdateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	vehicle, err := h.vehicleUsecase.Update(r.Context(), userID, vehicleID, &req)
	if err != nil {
		switch err {
		case usecase.ErrVehicleNotFound:
			response.NotFound(w, "Vehicle not found")
		default:
			response.InternalServerError(w, "Failed to update vehicle")
		}
		return
	}

	response.Success(w, http.StatusOK, "Vehicle updated successfully", vehicle)
}

func (h *VehicleHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	vehicleID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid vehicle ID", nil)
		return
	}

	if err := h.vehicleUsecase.Delete(r.Context(), userID, vehicleID); err != nil {
		switch err {
		case usecase.ErrVehicleNotFound:
			response.NotFound(w, "Vehicle not found")
		default:
			response.InternalServerError(w, "Failed to delete vehicle")
		}
		return
	}

	response.Success(w, http.StatusOK, "Vehicle deleted successfully", nil)
}
