package access

import (
	"context"

	"github.com/dangerclosesec/vizboard/internal/model"
	"github.com/google/uuid"
)

// CanView is the direct-fetch rule. memberOfTeam must say whether the caller
// belongs to the dataset's own team. A TEAM dataset without a team is never
// visible.
func CanView(callerID uuid.UUID, ds *model.Dataset, memberOfTeam bool) bool {
	switch ds.Visibility {
	case model.VisibilityPublic:
		return true
	case model.VisibilityPrivate:
		return ds.OwnerID == callerID
	case model.VisibilityTeam:
		return ds.TeamID != nil && memberOfTeam
	}
	return false
}

// InListing is the listing rule. TEAM datasets only appear when the listing
// was scoped to their team and the caller is a member of it.
func InListing(callerID uuid.UUID, ds *model.Dataset, requestedTeamID *uuid.UUID, memberOfRequested bool) bool {
	if ds.Visibility != model.VisibilityTeam {
		return CanView(callerID, ds, false)
	}
	if ds.TeamID == nil || requestedTeamID == nil {
		return false
	}
	return *ds.TeamID == *requestedTeamID && memberOfRequested
}

// Scope is a caller's resolved listing scope. TeamID is only set when the
// caller asked for a team and belongs to it.
type Scope struct {
	CallerID uuid.UUID
	TeamID   *uuid.UUID
}

// Includes applies the listing rule for this scope.
func (s Scope) Includes(ds *model.Dataset) bool {
	return InListing(s.CallerID, ds, s.TeamID, s.TeamID != nil)
}

// Resolver applies the visibility rules for the caller in a request context.
type Resolver struct {
	authz *Authorizer
}

func NewResolver(authz *Authorizer) *Resolver {
	return &Resolver{authz: authz}
}

// CanAccess authenticates the caller and fails with 403 when the dataset is
// not visible to them.
func (r *Resolver) CanAccess(ctx context.Context, ds *model.Dataset) (*Grant, error) {
	grant, err := r.authz.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}

	member := false
	if ds.Visibility == model.VisibilityTeam && ds.TeamID != nil {
		member, err = r.authz.IsMember(ctx, grant.UserID, *ds.TeamID)
		if err != nil {
			return nil, err
		}
	}

	allowed := CanView(grant.UserID, ds, member)
	r.authz.record(ctx, grant.UserID, model.PermissionDatasetView,
		model.Entity{Type: model.EntityDataset, ID: ds.ID.String()}, allowed,
		map[string]interface{}{"visibility": string(ds.Visibility)})
	if !allowed {
		return nil, Forbidden(MsgNoDatasetAccess)
	}
	return grant, nil
}

// ListingScope authenticates the caller and resolves the requested team
// filter. A team the caller does not belong to is dropped without error.
func (r *Resolver) ListingScope(ctx context.Context, requestedTeamID *uuid.UUID) (Scope, error) {
	grant, err := r.authz.RequireAuth(ctx)
	if err != nil {
		return Scope{}, err
	}

	scope := Scope{CallerID: grant.UserID}
	if requestedTeamID == nil {
		return scope, nil
	}

	member, err := r.authz.IsMember(ctx, grant.UserID, *requestedTeamID)
	if err != nil {
		return Scope{}, err
	}
	r.authz.record(ctx, grant.UserID, model.PermissionTeamMember, teamEntity(*requestedTeamID), member,
		map[string]interface{}{"listing": true})
	if member {
		teamID := *requestedTeamID
		scope.TeamID = &teamID
	}
	return scope, nil
}
