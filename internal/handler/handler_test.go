package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dangerclosesec/vizboard/internal/access"
	"github.com/dangerclosesec/vizboard/internal/handler"
	"github.com/dangerclosesec/vizboard/internal/mocks"
	"github.com/dangerclosesec/vizboard/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testAPI struct {
	router   http.Handler
	users    *mocks.MockUserRepositoryIface
	teams    *mocks.MockTeamRepositoryIface
	datasets *mocks.MockDatasetRepositoryIface
	vizs     *mocks.MockVisualizationRepositoryIface
	comments *mocks.MockCommentRepositoryIface
	audits   *mocks.MockAuthzAuditLogRepositoryIface
}

// newTestAPI wires real services over mocked repositories. callerID is the
// identity every request runs as; uuid.Nil makes requests anonymous.
func newTestAPI(t *testing.T, callerID uuid.UUID) *testAPI {
	ctrl := gomock.NewController(t)

	a := &testAPI{
		users:    mocks.NewMockUserRepositoryIface(ctrl),
		teams:    mocks.NewMockTeamRepositoryIface(ctrl),
		datasets: mocks.NewMockDatasetRepositoryIface(ctrl),
		vizs:     mocks.NewMockVisualizationRepositoryIface(ctrl),
		comments: mocks.NewMockCommentRepositoryIface(ctrl),
		audits:   mocks.NewMockAuthzAuditLogRepositoryIface(ctrl),
	}

	authz := access.NewAuthorizer(a.teams, nil)
	resolver := access.NewResolver(authz)
	vizService := service.NewVisualizationService(a.vizs, a.datasets, authz, resolver)

	api := &handler.API{
		Users:          handler.NewUserHandler(service.NewUserService(a.users, authz)),
		Teams:          handler.NewTeamHandler(service.NewTeamService(a.teams, a.users, authz, nil, nil)),
		Datasets:       handler.NewDatasetHandler(service.NewDatasetService(a.datasets, a.teams, authz, resolver), vizService),
		Visualizations: handler.NewVisualizationHandler(vizService),
		Comments:       handler.NewCommentHandler(service.NewCommentService(a.comments, vizService, authz)),
		AuditLogs:      handler.NewAuthzAuditLogHandler(service.NewAuthzAuditLogService(a.audits)),
	}

	r := chi.NewRouter()
	r.Get("/health", handler.Health)
	r.Route("/api", func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				if callerID != uuid.Nil {
					req = req.WithContext(access.WithIdentity(req.Context(), &access.Identity{
						UserID: callerID,
						Name:   "John Doe",
						Email:  "john@example.com",
					}))
				}
				next.ServeHTTP(w, req)
			})
		})
		api.Routes(r)
	})
	a.router = r
	return a
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
