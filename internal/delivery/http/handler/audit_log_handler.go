package handler

import (
	"net/http"
	"strconv"

	"family-records-api/internal/usecase"
	"family-records-api/pkg/response"
)

type AuditLogHandler struct {
	auditUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{auditUsecase: auditUsecase}
}

func (h *AuditLogHandler) GetRecentActivity(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	logs, err := h.auditUsecase.GetRecent(r.Context(), limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get activity log")
		return
	}

	response.Success(w, http.StatusOK, "Activity log retrieved successfully", logs)
}
