package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dangerclosesec/vizboard/internal/access"
	"github.com/dangerclosesec/vizboard/internal/domain"
	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ErrorResponse struct { // TypeGen: ErrorResponse
	BaseResponse
	Error   string    `json:"error"`
	Details *[]string `json:"details,omitempty"`
}

type BaseResponse struct { // TypeGen: DefaultResponse
	Ok bool `json:"ok"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	// Sets content type header
	w.Header().Set("Content-Type", "application/json")

	// Sets the HTTP status code
	w.WriteHeader(code)

	// Encodes the response
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func respondOK(w http.ResponseWriter) {
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// handleError maps a service error onto a status code. Denials keep their
// own status and message; anything unrecognised is logged and reported as 500.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	var denied *access.DeniedError
	if errors.As(err, &denied) {
		respondWithError(w, denied.Status, denied.Message)
		return
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		details := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			details = append(details, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
		}
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid input", Details: &details})
		return
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		respondWithError(w, http.StatusConflict, err.Error())
	default:
		requestID := chmw.GetReqID(r.Context())
		slog.ErrorContext(r.Context(), "Request failed", "error", err, "path", r.URL.Path, "requestID", requestID)
		sentry.WithScope(func(scope *sentry.Scope) {
			scope.SetTag("request_id", requestID)
			scope.SetExtra("path", r.URL.Path)
			sentry.CaptureException(err)
		})
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeJSON reads the request body into v. Unknown fields are ignored.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}

// urlUUID parses a path parameter, answering 400 when it is not a UUID.
func urlUUID(w http.ResponseWriter, r *http.Request, param, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Invalid %s ID format", label))
		return uuid.Nil, false
	}
	return id, true
}

// queryUUID parses an optional query parameter. An absent parameter yields nil.
func queryUUID(w http.ResponseWriter, r *http.Request, param string) (*uuid.UUID, bool) {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Invalid %s", param))
		return nil, false
	}
	return &id, true
}
