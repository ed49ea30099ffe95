package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"family-records-api/internal/delivery/dto"
	"family-records-api/internal/usecase"
	"family-records-api/pkg/response"
	"family-records-api/pkg/validator"

	"github.com/gorilla/mux"
)

type LookupHandler struct {
	lookupUsecase usecase.LookupUsecase
	validator     *validator.CustomValidator
}

func NewLookupHandler(lookupUsecase usecase.LookupUsecase, validator *validator.CustomValidator) *LookupHandler {
	return &LookupHandler{
		lookupUsecase: lookupUsecase,
		validator:     validator,
	}
}

func (h *LookupHandler) CreateDocumentType(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDocumentTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	dt, err := h.lookupUsecase.CreateDocumentType(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDocumentTypeExists:
			response.Conflict(w, "Document type already exists")
		default:
			response.InternalServerError(w, "Failed to create document type")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Document type created successfully", dt)
}

func (h *LookupHandler) GetDocumentTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.lookupUsecase.GetDocumentTypes(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get document types")
		return
	}

	response.Success(w, http.StatusOK, "Document types retrieved successfully", types)
}

func (h *LookupHandler) DeleteDocumentType(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid document type ID", nil)
		return
	}

	if err := h.lookupUsecase.DeleteDocumentType(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrDocumentTypeNotFound:
			response.NotFound(w, "Document type not found")
		default:
			response.InternalServerError(w, "Failed to delete document type")
		}
		return
	}

	response.Success(w, http.StatusOK, "Document type deleted successfully", nil)
}

func (h *LookupHandler) CreateBloodGroup(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBloodGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	bg, err := h.lookupUsecase.CreateBloodGroup(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrBloodGroupExists:
			response.Conflict(w, "Blood group already exists")
		default:
			response.InternalServerError(w, "Failed to create blood group")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Blood group created successfully", bg)
}

func (h *LookupHandler) GetBloodGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.lookupUsecase.GetBloodGroups(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get blood groups")
		return
	}

	response.Success(w, http.StatusOK, "Blood groups retrieved successfully", groups)
}

func (h *LookupHandler) DeleteBloodGroup(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid blood group ID", nil)
		return
	}

	if err := h.lookupUsecase.DeleteBloodGroup(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrBloodGroupNotFound:
			response.NotFound(w, "Blood group not found")
		default:
			response.InternalServerError(w, "Failed to delete blood group")
		}
		return
	}

	response.Success(w, http.StatusOK, "Blood group deleted successfully", nil)
}
