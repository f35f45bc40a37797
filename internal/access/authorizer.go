package access

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dangerclosesec/vizboard/internal/audit"
	"github.com/dangerclosesec/vizboard/internal/domain"
	"github.com/dangerclosesec/vizboard/internal/model"
	"github.com/google/uuid"
)

const (
	MsgUnauthorized    = "Unauthorized"
	MsgNotTeamMember   = "You do not have access to this team"
	MsgNotTeamOwner    = "Only the team owner can perform this action"
	MsgNoDatasetAccess = "You do not have access to this dataset"
)

// DeniedError is an authorization failure carrying the HTTP status and
// message the caller should see.
type DeniedError struct {
	Status  int
	Message string
}

func (e *DeniedError) Error() string {
	return e.Message
}

func (e *DeniedError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return domain.ErrUnauthenticated
	}
	return domain.ErrForbidden
}

// Unauthorized builds the 401 denial for a request without a session.
func Unauthorized() *DeniedError {
	return &DeniedError{Status: http.StatusUnauthorized, Message: MsgUnauthorized}
}

// Forbidden builds a 403 denial for checks made outside the Authorizer.
func Forbidden(message string) *DeniedError {
	return &DeniedError{Status: http.StatusForbidden, Message: message}
}

// MembershipReader looks up a single team membership.
type MembershipReader interface {
	FindMember(ctx context.Context, teamID, userID uuid.UUID) (*model.TeamMember, error)
}

// Grant is the result of a successful check. Member is set for team-scoped checks.
type Grant struct {
	UserID uuid.UUID
	Name   string
	Email  string
	Member *model.TeamMember
}

// Authorizer implements the three nested checks: authenticated, team member
// and team owner. Each check runs the previous one first and returns its
// DeniedError unchanged. None of them mutate anything.
type Authorizer struct {
	members MembershipReader
	auditor audit.Logger
}

func NewAuthorizer(members MembershipReader, auditor audit.Logger) *Authorizer {
	if auditor == nil {
		auditor = &audit.NoOpLogger{}
	}
	return &Authorizer{members: members, auditor: auditor}
}

// RequireAuth fails with 401 unless the request carries an identity.
func (a *Authorizer) RequireAuth(ctx context.Context) (*Grant, error) {
	id, ok := IdentityFromContext(ctx)
	if !ok {
		return nil, Unauthorized()
	}
	return &Grant{UserID: id.UserID, Name: id.Name, Email: id.Email}, nil
}

// RequireTeamMembership fails with 403 unless the caller has a membership row
// for the team. A team that does not exist is indistinguishable from one the
// caller does not belong to.
func (a *Authorizer) RequireTeamMembership(ctx context.Context, teamID uuid.UUID) (*Grant, error) {
	return a.membership(ctx, teamID, model.PermissionTeamMember)
}

// RequireTeamOwner fails with 403 unless the caller's role is at least OWNER.
func (a *Authorizer) RequireTeamOwner(ctx context.Context, teamID uuid.UUID) (*Grant, error) {
	grant, err := a.membership(ctx, teamID, model.PermissionTeamOwner)
	if err != nil {
		return nil, err
	}

	allowed := grant.Member.Role.AtLeast(model.RoleOwner)
	a.record(ctx, grant.UserID, model.PermissionTeamOwner, teamEntity(teamID), allowed, nil)
	if !allowed {
		return nil, Forbidden(MsgNotTeamOwner)
	}
	return grant, nil
}

// RequireOwnership fails with 403 and message unless the caller is ownerID,
// the user who owns object. The decision is recorded under permission.
func (a *Authorizer) RequireOwnership(ctx context.Context, object model.Entity, ownerID uuid.UUID, permission, message string) (*Grant, error) {
	grant, err := a.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}

	allowed := grant.UserID == ownerID
	a.record(ctx, grant.UserID, permission, object, allowed, nil)
	if !allowed {
		return nil, Forbidden(message)
	}
	return grant, nil
}

// IsMember reports whether the user belongs to the team. It never denies;
// only store failures are returned.
func (a *Authorizer) IsMember(ctx context.Context, userID, teamID uuid.UUID) (bool, error) {
	_, err := a.members.FindMember(ctx, teamID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("checking team membership: %w", err)
	}
	return true, nil
}

// membership runs RequireAuth and the membership lookup. The denial is
// recorded under permission; success is left for the caller to record.
func (a *Authorizer) membership(ctx context.Context, teamID uuid.UUID, permission string) (*Grant, error) {
	grant, err := a.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}

	member, err := a.members.FindMember(ctx, teamID, grant.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.record(ctx, grant.UserID, permission, teamEntity(teamID), false, nil)
			return nil, Forbidden(MsgNotTeamMember)
		}
		return nil, fmt.Errorf("checking team membership: %w", err)
	}

	if permission == model.PermissionTeamMember {
		a.record(ctx, grant.UserID, permission, teamEntity(teamID), true, nil)
	}
	grant.Member = member
	return grant, nil
}

func (a *Authorizer) record(ctx context.Context, userID uuid.UUID, permission string, object model.Entity, allowed bool, data map[string]interface{}) {
	subject := model.Subject{Type: model.SubjectUser, ID: userID.String()}
	if err := a.auditor.LogAccessCheck(ctx, subject, permission, object, allowed, data); err != nil {
		slog.WarnContext(ctx, "Failed to record access check",
			"error", err,
			"permission", permission,
			"object", object.ID,
		)
	}
}

func teamEntity(teamID uuid.UUID) model.Entity {
	return model.Entity{Type: model.EntityTeam, ID: teamID.String()}
}
