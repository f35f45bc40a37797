package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/getsentry/sentry-go"
	chmw "github.com/go-chi/chi/v5/middleware"
)

func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chmw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chmw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// Recoverer turns a panic into a 500 JSON response. The panic is logged and,
// when Sentry is initialised, reported there with the request id attached.
func Recoverer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				requestID := chmw.GetReqID(r.Context())
				logger.Error("panic recovered",
					"panic", rvr,
					"stack", string(debug.Stack()),
					"requestID", requestID,
				)

				sentry.WithScope(func(scope *sentry.Scope) {
					scope.SetTag("request_id", requestID)
					scope.SetExtra("method", r.Method)
					scope.SetExtra("path", r.URL.Path)
					sentry.CaptureException(fmt.Errorf("panic: %v", rvr))
				})

				respondWithError(w, http.StatusInternalServerError, "error encountered")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
