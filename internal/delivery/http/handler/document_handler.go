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

type DocumentHandler struct {
	docUsecase usecase.DocumentUsecase
	validator  *validator.CustomValidator
}

func NewDocumentHandler(docUsecase usecase.DocumentUsecase, validator *validator.CustomValidator) *DocumentHandler {
	return &DocumentHandler{
		docUsecase: docUsecase,
		validator:  validator,
	}
}

func (h *DocumentHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doc, err := h.docUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrMemberNotFound:
			response.Error(w, http.StatusBadRequest, "Family member not found", nil)
		default:
			response.InternalServerError(w, "Failed to create document")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Document created successfully", doc)
}

func (h *DocumentHandler) GetAllDocuments(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	docs, err := h.docUsecase.GetAll(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get documents")
		return
	}

	response.Success(w, http.StatusOK, "Documents retrieved successfully", docs)
}

func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	docID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid document ID", nil)
		return
	}

	doc, err := h.docUsecase.GetByID(r.Context(), userID, docID)
	if err != nil {
		if err == usecase.ErrDocumentNotFound {
			response.NotFound(w, "Document not found")
			return
		}
		response.InternalServerError(w, "Failed to get document")
		return
	}

	response.Success(w, http.StatusOK, "Document retrieved successfully", doc)
}

func (h *DocumentHandler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	docID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid document ID", nil)
		return
	}

	var req dto.UpdateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doc, err := h.docUsecase.Update(r.Context(), userID, docID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDocumentNotFound:
			response.NotFound(w, "Document not found")
		case usecase.ErrMemberNotFound:
			response.Error(w, http.StatusBadRequest, "Family member not found", nil)
		default:
			response.InternalServerError(w, "Failed to update document")
		}
		return
	}

	response.Success(w, http.StatusOK, "Document updated successfully", doc)
}

func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	docID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid document ID", nil)
		return
	}

	if err := h.docUsecase.Delete(r.Context(), userID, docID); err != nil {
		switch err {
		case usecase.ErrDocumentNotFound:
			response.NotFound(w, "Document not found")
		default:
			response.InternalServerError(w, "Failed to delete document")
		}
		return
	}

	response.Success(w, http.StatusOK, "Document deleted successfully", nil)
}
