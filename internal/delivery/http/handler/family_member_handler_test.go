package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"family-records-api/internal/delivery/dto"
	"family-records-api/internal/usecase"
	"family-records-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// stubMemberUsecase serves canned member lists keyed by user ID.
type stubMemberUsecase struct {
	byUser map[uuid.UUID]*dto.FamilyMemberListResponse
}

func (s *stubMemberUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateFamilyMemberRequest) (*dto.FamilyMemberResponse, error) {
	return nil, nil
}

func (s *stubMemberUsecase) GetAll(ctx context.Context, userID uuid.UUID) (*dto.FamilyMemberListResponse, error) {
	return s.ListForUser(ctx, userID)
}

func (s *stubMemberUsecase) ListForUser(ctx context.Context, userID uuid.UUID) (*dto.FamilyMemberListResponse, error) {
	list, ok := s.byUser[userID]
	if !ok {
		return nil, usecase.ErrUserNotFound
	}
	return list, nil
}

func (s *stubMemberUsecase) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*dto.FamilyMemberResponse, error) {
	return nil, usecase.ErrMemberNotFound
}

func (s *stubMemberUsecase) Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *dto.UpdateFamilyMemberRequest) (*dto.FamilyMemberResponse, error) {
	return nil, usecase.ErrMemberNotFound
}

func (s *stubMemberUsecase) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	return usecase.ErrMemberNotFound
}

func memberTestRouter(h *FamilyMemberHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/admin/users/{id}/members", h.GetUserMembers).Methods(http.MethodGet)
	return r
}

func TestGetUserMembersReturnsTargetUserList(t *testing.T) {
	ownerID := uuid.New()
	stub := &stubMemberUsecase{
		byUser: map[uuid.UUID]*dto.FamilyMemberListResponse{
			ownerID: {
				Members: []dto.FamilyMemberResponse{
					{ID: uuid.New(), Name: "Asha", Relation: "Mother"},
					{ID: uuid.New(), Name: "Ravi", Relation: "Father"},
				},
				Total: 2,
			},
		},
	}
	h := NewFamilyMemberHandler(stub, validator.NewValidator())
	r := memberTestRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users/"+ownerID.String()+"/members", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var body struct {
		Success bool                         `json:"success"`
		Data    dto.FamilyMemberListResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success {
		t.Fatalf("success = false, body %s", rec.Body.String())
	}
	if body.Data.Total != 2 || len(body.Data.Members) != 2 {
		t.Fatalf("got %d members (total %d), want 2", len(body.Data.Members), body.Data.Total)
	}
	if body.Data.Members[0].Name != "Asha" {
		t.Fatalf("first member = %q, want Asha", body.Data.Members[0].Name)
	}
}

func TestGetUserMembersUnknownUser(t *testing.T) {
	stub := &stubMemberUsecase{byUser: map[uuid.UUID]*dto.FamilyMemberListResponse{}}
	h := NewFamilyMemberHandler(stub, validator.NewValidator())
	r := memberTestRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users/"+uuid.NewString()+"/members", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestGetUserMembersInvalidID(t *testing.T) {
	stub := &stubMemberUsecase{byUser: map[uuid.UUID]*dto.FamilyMemberListResponse{}}
	h := NewFamilyMemberHandler(stub, validator.NewValidator())
	r := memberTestRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users/not-a-uuid/members", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
