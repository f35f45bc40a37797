package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dangerclosesec/vizboard/internal/model"
	"github.com/dangerclosesec/vizboard/internal/repository"
	"github.com/dangerclosesec/vizboard/internal/service"
)

// AuthzAuditLogHandler handles API requests related to authorization audit logs
type AuthzAuditLogHandler struct {
	auditLogService *service.AuthzAuditLogService
}

// NewAuthzAuditLogHandler creates a new audit log handler
func NewAuthzAuditLogHandler(auditLogService *service.AuthzAuditLogService) *AuthzAuditLogHandler {
	return &AuthzAuditLogHandler{
		auditLogService: auditLogService,
	}
}

type AuditLogsResponse struct {
	Logs  []model.AuthzAuditLog `json:"logs"`
	Total int64                 `json:"total"`
}

// GetAuditLogs returns a page of the caller's audit entries. Malformed
// filters are ignored rather than rejected.
func (h *AuthzAuditLogHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := repository.QueryParams{
		ActionType: query.Get("action_type"),
		EntityType: query.Get("entity_type"),
		EntityID:   query.Get("entity_id"),
		Permission: query.Get("permission"),
	}

	if resultStr := query.Get("result"); resultStr != "" {
		result, err := strconv.ParseBool(resultStr)
		if err == nil {
			params.Result = &result
		}
	}

	if startTimeStr := query.Get("start_time"); startTimeStr != "" {
		startTime, err := time.Parse(time.RFC3339, startTimeStr)
		if err == nil {
			params.StartTime = startTime
		}
	}

	if endTimeStr := query.Get("end_time"); endTimeStr != "" {
		endTime, err := time.Parse(time.RFC3339, endTimeStr)
		if err == nil {
			params.EndTime = endTime
		}
	}

	// Pagination
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil && limit > 0 {
		params.Limit = limit
	}
	if offset, err := strconv.Atoi(query.Get("offset")); err == nil && offset >= 0 {
		params.Offset = offset
	}

	logs, total, err := h.auditLogService.GetAuditLogs(r.Context(), params)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if logs == nil {
		logs = []model.AuthzAuditLog{}
	}

	respondWithJSON(w, http.StatusOK, AuditLogsResponse{Logs: logs, Total: total})
}

// GetAuditLogByID handles requests to retrieve a specific audit log by ID
func (h *AuthzAuditLogHandler) GetAuditLogByID(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "audit log")
	if !ok {
		return
	}

	log, err := h.auditLogService.GetAuditLogByID(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, log)
}
