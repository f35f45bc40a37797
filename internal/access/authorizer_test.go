package access_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/dangerclosesec/vizboard/internal/access"
	"github.com/dangerclosesec/vizboard/internal/domain"
	"github.com/dangerclosesec/vizboard/internal/mocks"
	"github.com/dangerclosesec/vizboard/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func asCaller(userID uuid.UUID) context.Context {
	return access.WithIdentity(context.Background(), &access.Identity{
		UserID: userID,
		Name:   "Test User",
		Email:  "test@example.com",
	})
}

func requireDenied(t *testing.T, err error, status int, message string) {
	t.Helper()
	var denied *access.DeniedError
	require.True(t, errors.As(err, &denied), "expected DeniedError, got %v", err)
	assert.Equal(t, status, denied.Status)
	assert.Equal(t, message, denied.Message)
}

func TestRequireAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authz := access.NewAuthorizer(mocks.NewMockTeamRepositoryIface(ctrl), nil)

	t.Run("no identity", func(t *testing.T) {
		grant, err := authz.RequireAuth(context.Background())
		assert.Nil(t, grant)
		requireDenied(t, err, http.StatusUnauthorized, access.MsgUnauthorized)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("nil user id", func(t *testing.T) {
		ctx := access.WithIdentity(context.Background(), &access.Identity{})
		_, err := authz.RequireAuth(ctx)
		requireDenied(t, err, http.StatusUnauthorized, access.MsgUnauthorized)
	})

	t.Run("authenticated", func(t *testing.T) {
		userID := uuid.New()
		grant, err := authz.RequireAuth(asCaller(userID))
		require.NoError(t, err)
		assert.Equal(t, userID, grant.UserID)
		assert.Equal(t, "Test User", grant.Name)
		assert.Nil(t, grant.Member)
	})
}

func TestRequireTeamMembership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	teamID := uuid.New()

	t.Run("member", func(t *testing.T) {
		members := mocks.NewMockTeamRepositoryIface(ctrl)
		auditor := mocks.NewMockLogger(ctrl)
		member := &model.TeamMember{TeamID: teamID, UserID: userID, Role: model.RoleMember}

		members.EXPECT().FindMember(gomock.Any(), teamID, userID).Return(member, nil)
		auditor.EXPECT().
			LogAccessCheck(gomock.Any(), model.Subject{Type: model.SubjectUser, ID: userID.String()},
				model.PermissionTeamMember, model.Entity{Type: model.EntityTeam, ID: teamID.String()}, true, gomock.Any()).
			Return(nil)

		grant, err := access.NewAuthorizer(members, auditor).RequireTeamMembership(asCaller(userID), teamID)
		require.NoError(t, err)
		assert.Equal(t, member, grant.Member)
	})

	t.Run("not a member", func(t *testing.T) {
		members := mocks.NewMockTeamRepositoryIface(ctrl)
		auditor := mocks.NewMockLogger(ctrl)

		members.EXPECT().FindMember(gomock.Any(), teamID, userID).Return(nil, domain.ErrMemberNotFound)
		auditor.EXPECT().
			LogAccessCheck(gomock.Any(), gomock.Any(), model.PermissionTeamMember, gomock.Any(), false, gomock.Any()).
			Return(nil)

		_, err := access.NewAuthorizer(members, auditor).RequireTeamMembership(asCaller(userID), teamID)
		requireDenied(t, err, http.StatusForbidden, access.MsgNotTeamMember)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unauthenticated skips lookup", func(t *testing.T) {
		members := mocks.NewMockTeamRepositoryIface(ctrl)

		_, err := access.NewAuthorizer(members, nil).RequireTeamMembership(context.Background(), teamID)
		requireDenied(t, err, http.StatusUnauthorized, access.MsgUnauthorized)
	})

	t.Run("store failure is not a denial", func(t *testing.T) {
		members := mocks.NewMockTeamRepositoryIface(ctrl)
		members.EXPECT().FindMember(gomock.Any(), teamID, userID).Return(nil, errors.New("connection reset"))

		_, err := access.NewAuthorizer(members, nil).RequireTeamMembership(asCaller(userID), teamID)
		require.Error(t, err)
		var denied *access.DeniedError
		assert.False(t, errors.As(err, &denied))
	})

	t.Run("audit failure does not change the decision", func(t *testing.T) {
		members := mocks.NewMockTeamRepositoryIface(ctrl)
		auditor := mocks.NewMockLogger(ctrl)

		members.EXPECT().FindMember(gomock.Any(), teamID, userID).
			Return(&model.TeamMember{TeamID: teamID, UserID: userID, Role: model.RoleMember}, nil)
		auditor.EXPECT().LogAccessCheck(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("audit table missing"))

		_, err := access.NewAuthorizer(members, auditor).RequireTeamMembership(asCaller(userID), teamID)
		assert.NoError(t, err)
	})
}

func TestRequireTeamOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	teamID := uuid.New()

	tests := []struct {
		name       string
		member     *model.TeamMember
		findErr    error
		wantStatus int
		wantMsg    string
	}{
		{
			name:   "owner",
			member: &model.TeamMember{TeamID: teamID, UserID: userID, Role: model.RoleOwner},
		},
		{
			name:       "member is not owner",
			member:     &model.TeamMember{TeamID: teamID, UserID: userID, Role: model.RoleMember},
			wantStatus: http.StatusForbidden,
			wantMsg:    access.MsgNotTeamOwner,
		},
		{
			name:       "unknown role is not owner",
			member:     &model.TeamMember{TeamID: teamID, UserID: userID, Role: model.TeamRole("ADMIN")},
			wantStatus: http.StatusForbidden,
			wantMsg:    access.MsgNotTeamOwner,
		},
		{
			name:       "non-member gets the membership message",
			findErr:    domain.ErrMemberNotFound,
			wantStatus: http.StatusForbidden,
			wantMsg:    access.MsgNotTeamMember,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			members := mocks.NewMockTeamRepositoryIface(ctrl)
			auditor := mocks.NewMockLogger(ctrl)

			members.EXPECT().FindMember(gomock.Any(), teamID, userID).Return(tt.member, tt.findErr)
			auditor.EXPECT().
				LogAccessCheck(gomock.Any(), gomock.Any(), model.PermissionTeamOwner, gomock.Any(), tt.wantStatus == 0, gomock.Any()).
				Return(nil)

			grant, err := access.NewAuthorizer(members, auditor).RequireTeamOwner(asCaller(userID), teamID)
			if tt.wantStatus == 0 {
				require.NoError(t, err)
				assert.Equal(t, model.RoleOwner, grant.Member.Role)
				return
			}
			assert.Nil(t, grant)
			requireDenied(t, err, tt.wantStatus, tt.wantMsg)
		})
	}
}

func TestRequireOwnership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authorID := uuid.New()
	commentID := uuid.New()
	object := model.Entity{Type: model.EntityComment, ID: commentID.String()}
	const msg = "You can only delete your own comments"

	t.Run("author", func(t *testing.T) {
		auditor := mocks.NewMockLogger(ctrl)
		auditor.EXPECT().
			LogAccessCheck(gomock.Any(), model.Subject{Type: model.SubjectUser, ID: authorID.String()},
				model.PermissionCommentDelete, object, true, gomock.Any()).
			Return(nil)

		authz := access.NewAuthorizer(mocks.NewMockTeamRepositoryIface(ctrl), auditor)
		grant, err := authz.RequireOwnership(asCaller(authorID), object, authorID, model.PermissionCommentDelete, msg)
		require.NoError(t, err)
		assert.Equal(t, authorID, grant.UserID)
	})

	t.Run("someone else is denied and recorded", func(t *testing.T) {
		otherID := uuid.New()
		auditor := mocks.NewMockLogger(ctrl)
		auditor.EXPECT().
			LogAccessCheck(gomock.Any(), model.Subject{Type: model.SubjectUser, ID: otherID.String()},
				model.PermissionCommentDelete, object, false, gomock.Any()).
			Return(nil)

		authz := access.NewAuthorizer(mocks.NewMockTeamRepositoryIface(ctrl), auditor)
		grant, err := authz.RequireOwnership(asCaller(otherID), object, authorID, model.PermissionCommentDelete, msg)
		assert.Nil(t, grant)
		requireDenied(t, err, http.StatusForbidden, msg)
	})

	t.Run("anonymous is not recorded", func(t *testing.T) {
		auditor := mocks.NewMockLogger(ctrl)
		auditor.EXPECT().LogAccessCheck(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		authz := access.NewAuthorizer(mocks.NewMockTeamRepositoryIface(ctrl), auditor)
		_, err := authz.RequireOwnership(context.Background(), object, authorID, model.PermissionCommentDelete, msg)
		requireDenied(t, err, http.StatusUnauthorized, access.MsgUnauthorized)
	})
}

func TestIsMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	teamID := uuid.New()
	members := mocks.NewMockTeamRepositoryIface(ctrl)
	authz := access.NewAuthorizer(members, nil)

	members.EXPECT().FindMember(gomock.Any(), teamID, userID).Return(&model.TeamMember{}, nil)
	ok, err := authz.IsMember(context.Background(), userID, teamID)
	require.NoError(t, err)
	assert.True(t, ok)

	members.EXPECT().FindMember(gomock.Any(), teamID, userID).Return(nil, domain.ErrMemberNotFound)
	ok, err = authz.IsMember(context.Background(), userID, teamID)
	require.NoError(t, err)
	assert.False(t, ok)
}
