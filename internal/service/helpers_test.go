package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dangerclosesec/vizboard/internal/access"
	"github.com/dangerclosesec/vizboard/internal/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	users          *mocks.MockUserRepositoryIface
	teams          *mocks.MockTeamRepositoryIface
	datasets       *mocks.MockDatasetRepositoryIface
	visualizations *mocks.MockVisualizationRepositoryIface
	comments       *mocks.MockCommentRepositoryIface
	authz          *access.Authorizer
	resolver       *access.Resolver
}

func newFixture(ctrl *gomock.Controller) *fixture {
	f := &fixture{
		users:          mocks.NewMockUserRepositoryIface(ctrl),
		teams:          mocks.NewMockTeamRepositoryIface(ctrl),
		datasets:       mocks.NewMockDatasetRepositoryIface(ctrl),
		visualizations: mocks.NewMockVisualizationRepositoryIface(ctrl),
		comments:       mocks.NewMockCommentRepositoryIface(ctrl),
	}
	f.authz = access.NewAuthorizer(f.teams, nil)
	f.resolver = access.NewResolver(f.authz)
	return f
}

func asCaller(userID uuid.UUID) context.Context {
	return access.WithIdentity(context.Background(), &access.Identity{
		UserID: userID,
		Name:   "John Doe",
		Email:  "john@example.com",
	})
}

func assertDenied(t *testing.T, err error, status int) {
	t.Helper()
	var denied *access.DeniedError
	require.True(t, errors.As(err, &denied), "expected DeniedError, got %v", err)
	assert.Equal(t, status, denied.Status)
}

func ptr[T any](v T) *T { return &v }
