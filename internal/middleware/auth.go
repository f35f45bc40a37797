// internal/middleware/auth.go
package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dangerclosesec/vizboard/internal/access"
	"github.com/dangerclosesec/vizboard/internal/auth"
	chmw "github.com/go-chi/chi/v5/middleware"
)

// Authenticate resolves the caller's session and stores the identity on the
// request context. Requests without a session pass through anonymously; the
// services answer them with 401. A failing identity provider is a 500.
func Authenticate(resolver auth.SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := resolver.Resolve(r.Context(), r.Header)
			if err != nil {
				slog.ErrorContext(r.Context(), "Session resolution failed",
					"error", err,
					"requestID", chmw.GetReqID(r.Context()),
				)
				respondWithError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			if session == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := access.WithIdentity(r.Context(), &access.Identity{
				UserID: session.UserID,
				Name:   session.Name,
				Email:  session.Email,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type errorResponse struct {
	Ok    bool   `json:"ok"`
	Error string `json:"error"`
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: message}); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
