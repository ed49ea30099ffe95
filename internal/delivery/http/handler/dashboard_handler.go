package handler

import (
	"encoding/json"
	"net/http"

	"family-records-api/internal/delivery/dto"
	"family-records-api/internal/delivery/http/middleware"
	"family-records-api/internal/usecase"
	"family-records-api/pkg/response"
	"family-records-api/pkg/validator"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
	validator        *validator.CustomValidator
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase, validator *validator.CustomValidator) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
		validator:        validator,
	}
}

func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	summary, err := h.dashboardUsecase.GetSummary(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get dashboard summary")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard summary retrieved successfully", summary)
}

func (h *DashboardHandler) Ask(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.AssistantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	answer, err := h.dashboardUsecase.Ask(r.Context(), userID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to answer question")
		return
	}

	response.Success(w, http.StatusOK, "Question answered successfully", answer)
}
