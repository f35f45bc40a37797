package middleware

import (
	"net/http"

	"github.com/dangerclosesec/vizboard/internal/audit"
	chmw "github.com/go-chi/chi/v5/middleware"
)

// AuditRequest attaches the request id, client address and user agent to the
// context so audit entries written during the request can carry them. It
// belongs after chi's RequestID and RealIP middleware.
func AuditRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := audit.WithRequestInfo(r.Context(), audit.RequestInfo{
			RequestID: chmw.GetReqID(r.Context()),
			ClientIP:  r.RemoteAddr,
			UserAgent: r.UserAgent(),
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
