package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dangerclosesec/vizboard/internal/access"
	"github.com/dangerclosesec/vizboard/internal/audit"
	"github.com/dangerclosesec/vizboard/internal/domain"
	"github.com/dangerclosesec/vizboard/internal/model"
	"github.com/dangerclosesec/vizboard/internal/repository"
	"github.com/google/uuid"
)

// Ensure AuthzAuditLogService implements the audit.Logger interface
var _ audit.Logger = (*AuthzAuditLogService)(nil)

var errAuditLogNotFound = fmt.Errorf("audit log %w", domain.ErrNotFound)

// AuthzAuditLogService writes authorization decisions and membership changes
// to the audit log, and lets callers read back their own entries
type AuthzAuditLogService struct {
	repo repository.AuthzAuditLogRepositoryIface
}

func NewAuthzAuditLogService(repo repository.AuthzAuditLogRepositoryIface) *AuthzAuditLogService {
	return &AuthzAuditLogService{repo: repo}
}

func (s *AuthzAuditLogService) LogAccessCheck(
	ctx context.Context,
	subject model.Subject,
	permission string,
	object model.Entity,
	allowed bool,
	contextData map[string]interface{},
) error {
	log := &model.AuthzAuditLog{
		ActionType:  model.ActionAccessCheck,
		Result:      &allowed,
		EntityType:  object.Type,
		EntityID:    object.ID,
		SubjectType: subject.Type,
		SubjectID:   subject.ID,
		Permission:  permission,
		Context:     model.JSONMap(contextData),
	}
	return s.write(ctx, log)
}

func (s *AuthzAuditLogService) LogMembershipChange(
	ctx context.Context,
	action string,
	team model.Entity,
	member model.Subject,
	role model.TeamRole,
) error {
	log := &model.AuthzAuditLog{
		ActionType:  action,
		EntityType:  team.Type,
		EntityID:    team.ID,
		SubjectType: member.Type,
		SubjectID:   member.ID,
		Relation:    string(role),
	}
	return s.write(ctx, log)
}

func (s *AuthzAuditLogService) LogTeamDisbanded(
	ctx context.Context,
	team model.Entity,
	actor model.Subject,
	reassignedDatasets int64,
) error {
	log := &model.AuthzAuditLog{
		ActionType:  model.ActionTeamDisbanded,
		EntityType:  team.Type,
		EntityID:    team.ID,
		SubjectType: actor.Type,
		SubjectID:   actor.ID,
		Context:     model.JSONMap{"reassigned_datasets": reassignedDatasets},
	}
	return s.write(ctx, log)
}

// GetAuditLogs returns the caller's own audit entries. Any subject filter in
// params is replaced by the caller.
func (s *AuthzAuditLogService) GetAuditLogs(
	ctx context.Context,
	params repository.QueryParams,
) ([]model.AuthzAuditLog, int64, error) {
	caller, ok := access.IdentityFromContext(ctx)
	if !ok {
		return nil, 0, access.Unauthorized()
	}

	params.SubjectType = model.SubjectUser
	params.SubjectID = caller.UserID.String()
	return s.repo.Query(ctx, params)
}

// GetAuditLogByID returns one of the caller's entries. Other subjects'
// entries are reported as not found.
func (s *AuthzAuditLogService) GetAuditLogByID(
	ctx context.Context,
	id uuid.UUID,
) (*model.AuthzAuditLog, error) {
	caller, ok := access.IdentityFromContext(ctx)
	if !ok {
		return nil, access.Unauthorized()
	}

	log, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errAuditLogNotFound
		}
		return nil, fmt.Errorf("failed to get audit log by ID: %w", err)
	}

	if log.SubjectType != model.SubjectUser || log.SubjectID != caller.UserID.String() {
		return nil, errAuditLogNotFound
	}
	return log, nil
}

func (s *AuthzAuditLogService) write(ctx context.Context, log *model.AuthzAuditLog) error {
	log.Timestamp = time.Now().UTC()
	if info, ok := audit.RequestInfoFromContext(ctx); ok {
		log.RequestID = info.RequestID
		log.ClientIP = info.ClientIP
		log.UserAgent = info.UserAgent
	}
	return s.repo.Create(ctx, log)
}
