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

type FamilyMemberHandler struct {
	memberUsecase usecase.FamilyMemberUsecase
	validator     *validator.CustomValidator
}

func NewFamilyMemberHandler(memberUsecase usecase.FamilyMemberUsecase, validator *validator.CustomValidator) *FamilyMemberHandler {
	return &FamilyMemberHandler{
		memberUsecase: memberUsecase,
		validator:     validator,
	}
}

func (h *FamilyMemberHandler) CreateMember(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateFamilyMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	member, err := h.memberUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create family member")
		return
	}

	response.Success(w, http.StatusCreated, "Family member created successfully", member)
}

func (h *FamilyMemberHandler) GetAllMembers(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	members, err := h.memberUsecase.GetAll(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get family members")
		return
	}

	response.Success(w, http.StatusOK, "Family members retrieved successfully", members)
}

// GetUserMembers lists the family members of an arbitrary user. Admin only;
// the target user comes from the path, not from the token.
func (h *FamilyMemberHandler) GetUserMembers(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	targetUserID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return
	}

	members, err := h.memberUsecase.ListForUser(r.Context(), targetUserID)
	if err != nil {
		if err == usecase.ErrUserNotFound {
			response.NotFound(w, "User not found")
			return
		}
		response.InternalServerError(w, "Failed to get family members")
		return
	}

	response.Success(w, http.StatusOK, "Family members retrieved successfully", members)
}

func (h *FamilyMemberHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	memberID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid member ID", nil)
		return
	}

	member, err := h.memberUsecase.GetByID(r.Context(), userID, memberID)
	if err != nil {
		if err == usecase.ErrMemberNotFound {
			response.NotFound(w, "Family member not found")
			return
		}
		response.InternalServerError(w, "Failed to get family member")
		return
	}

	response.Success(w, http.StatusOK, "Family member retrieved successfully", member)
}

func (h *FamilyMemberHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	memberID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid member ID", nil)
		return
	}

	var req dto.UpdateFamilyMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	member, err := h.memberUsecase.Update(r.Context(), userID, memberID, &req)
	if err != nil {
		switch err {
		case usecase.ErrMemberNotFound:
			response.NotFound(w, "Family member not found")
		default:
			response.InternalServerError(w, "Failed to update family member")
		}
		return
	}

	response.Success(w, http.StatusOK, "Family member updated successfully", member)
}

func (h *FamilyMemberHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	memberID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid member ID", nil)
		return
	}

	if err := h.memberUsecase.Delete(r.Context(), userID, memberID); err != nil {
		switch err {
		case usecase.ErrMemberNotFound:
			response.NotFound(w, "Family member not found")
		default:
			response.InternalServerError(w, "Failed to delete family member")
		}
		return
	}

	response.Success(w, http.StatusOK, "Family member deleted successfully", nil)
}
