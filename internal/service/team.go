package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dangerclosesec/vizboard/internal/access"
	"github.com/dangerclosesec/vizboard/internal/audit"
	"github.com/dangerclosesec/vizboard/internal/domain"
	"github.com/dangerclosesec/vizboard/internal/model"
	"github.com/dangerclosesec/vizboard/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type TeamService struct {
	repo     repository.TeamRepositoryIface
	userRepo repository.UserRepositoryIface
	authz    *access.Authorizer
	auditor  audit.Logger
	notifier Notifier
	validate *validator.Validate
}

func NewTeamService(
	repo repository.TeamRepositoryIface,
	userRepo repository.UserRepositoryIface,
	authz *access.Authorizer,
	auditor audit.Logger,
	notifier Notifier,
) *TeamService {
	if auditor == nil {
		auditor = &audit.NoOpLogger{}
	}
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &TeamService{
		repo:     repo,
		userRepo: userRepo,
		authz:    authz,
		auditor:  auditor,
		notifier: notifier,
		validate: newValidator(),
	}
}

type CreateTeamInput struct {
	Name        string      `json:"name" validate:"required,notblank,max=100"`
	Description *string     `json:"description" validate:"omitempty,max=500"`
	MemberIDs   []uuid.UUID `json:"memberIds" validate:"max=100"`
}

type MemberInput struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
	Role   string    `json:"role"`
}

// AddMembersResult reports which requested users were added and which
// already belonged to the team.
type AddMembersResult struct {
	Added   []model.TeamMember
	Skipped []uuid.UUID
}

// TeamSummary is one of the caller's teams together with the caller's role.
type TeamSummary struct {
	Team        model.Team
	Role        model.TeamRole
	MemberCount int
}

// Create makes the caller OWNER of a new team. memberIds join as MEMBER in
// the same transaction; the caller's own id and repeats are ignored.
func (s *TeamService) Create(ctx context.Context, input CreateTeamInput) (*model.Team, error) {
	grant, err := s.authz.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.validate.Struct(input); err != nil {
		return nil, validationFailed(err)
	}

	memberIDs := uniqueIDs(input.MemberIDs, grant.UserID)
	users, err := s.requireUsers(ctx, memberIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	team := &model.Team{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Members: []model.TeamMember{
			{UserID: grant.UserID, Role: model.RoleOwner, JoinedAt: now},
		},
	}
	for _, id := range memberIDs {
		team.Members = append(team.Members, model.TeamMember{UserID: id, Role: model.RoleMember, JoinedAt: now})
	}

	if err := s.repo.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("creating team: %w", err)
	}

	for _, m := range team.Members {
		s.recordMembership(ctx, model.ActionMemberAdded, team.ID, m.UserID, m.Role)
	}
	for _, id := range memberIDs {
		s.notifyAdded(ctx, users[id], *team, grant.Name)
	}

	created, err := s.repo.FindByID(ctx, team.ID)
	if err != nil {
		return nil, fmt.Errorf("reloading team: %w", err)
	}
	return created, nil
}

// Get returns the team with its members. Only members may see it.
func (s *TeamService) Get(ctx context.Context, teamID uuid.UUID) (*model.Team, error) {
	if _, err := s.authz.RequireTeamMembership(ctx, teamID); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, teamID)
}

// ListMine returns every team the caller belongs to.
func (s *TeamService) ListMine(ctx context.Context) ([]TeamSummary, error) {
	grant, err := s.authz.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}

	teams, err := s.repo.FindByUser(ctx, grant.UserID)
	if err != nil {
		return nil, err
	}

	summaries := make([]TeamSummary, 0, len(teams))
	for _, team := range teams {
		summary := TeamSummary{Team: team, MemberCount: len(team.Members)}
		for _, m := range team.Members {
			if m.UserID == grant.UserID {
				summary.Role = m.Role
				break
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// AddMembers adds one or more users to the team. Users who already belong to
// it are skipped, not rejected. OWNER cannot be granted, so a team keeps
// exactly one owner.
func (s *TeamService) AddMembers(ctx context.Context, teamID uuid.UUID, inputs []MemberInput) (*AddMembersResult, error) {
	grant, err := s.authz.RequireTeamOwner(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if len(inputs) == 0 {
		return nil, fmt.Errorf("at least one member is required: %w", domain.ErrInvalidInput)
	}

	result := &AddMembersResult{}
	seen := make(map[uuid.UUID]bool, len(inputs))
	var pending []model.TeamMember
	for _, input := range inputs {
		if err := s.validate.Struct(input); err != nil {
			return nil, validationFailed(err)
		}
		role, err := model.ParseTeamRole(input.Role)
		if err != nil || role != model.RoleMember {
			return nil, domain.ErrInvalidRole
		}
		if seen[input.UserID] {
			result.Skipped = append(result.Skipped, input.UserID)
			continue
		}
		seen[input.UserID] = true
		pending = append(pending, model.TeamMember{TeamID: teamID, UserID: input.UserID, Role: role})
	}

	ids := make([]uuid.UUID, 0, len(pending))
	for _, m := range pending {
		ids = append(ids, m.UserID)
	}
	users, err := s.requireUsers(ctx, ids)
	if err != nil {
		return nil, err
	}

	team, err := s.repo.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	for i := range pending {
		member := pending[i]
		member.JoinedAt = time.Now().UTC()

		added, err := s.repo.AddMember(ctx, &member)
		if err != nil {
			return nil, err
		}
		if !added {
			result.Skipped = append(result.Skipped, member.UserID)
			continue
		}

		user := users[member.UserID]
		member.User = &user
		result.Added = append(result.Added, member)

		s.recordMembership(ctx, model.ActionMemberAdded, teamID, member.UserID, member.Role)
		s.notifyAdded(ctx, user, *team, grant.Name)
	}

	return result, nil
}

// RemoveMember removes userID from the team. The owner cannot remove themselves.
func (s *TeamService) RemoveMember(ctx context.Context, teamID, userID uuid.UUID) error {
	grant, err := s.authz.RequireTeamOwner(ctx, teamID)
	if err != nil {
		return err
	}

	if userID == grant.UserID {
		return domain.ErrCannotRemoveSelf
	}

	if err := s.repo.RemoveMember(ctx, teamID, userID); err != nil {
		return err
	}

	s.recordMembership(ctx, model.ActionMemberRemoved, teamID, userID, model.RoleMember)
	return nil
}

// Disband deletes the team. Its TEAM datasets become PRIVATE to their owners.
// It returns how many datasets were reassigned.
func (s *TeamService) Disband(ctx context.Context, teamID uuid.UUID) (int64, error) {
	grant, err := s.authz.RequireTeamOwner(ctx, teamID)
	if err != nil {
		return 0, err
	}

	reassigned, err := s.repo.Disband(ctx, teamID)
	if err != nil {
		return 0, err
	}

	if err := s.auditor.LogTeamDisbanded(ctx,
		model.Entity{Type: model.EntityTeam, ID: teamID.String()},
		model.Subject{Type: model.SubjectUser, ID: grant.UserID.String()},
		reassigned,
	); err != nil {
		slog.WarnContext(ctx, "Failed to audit team disband", "error", err, "teamID", teamID)
	}

	return reassigned, nil
}

// requireUsers loads ids and fails with ErrUserNotFound if any is missing.
func (s *TeamService) requireUsers(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.User, error) {
	users := make(map[uuid.UUID]model.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	found, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, u := range found {
		users[u.ID] = u
	}
	for _, id := range ids {
		if _, ok := users[id]; !ok {
			return nil, fmt.Errorf("%s: %w", id, domain.ErrUserNotFound)
		}
	}
	return users, nil
}

func (s *TeamService) recordMembership(ctx context.Context, action string, teamID, userID uuid.UUID, role model.TeamRole) {
	err := s.auditor.LogMembershipChange(ctx, action,
		model.Entity{Type: model.EntityTeam, ID: teamID.String()},
		model.Subject{Type: model.SubjectUser, ID: userID.String()},
		role,
	)
	if err != nil {
		slog.WarnContext(ctx, "Failed to audit membership change", "error", err, "action", action, "teamID", teamID)
	}
}

func (s *TeamService) notifyAdded(ctx context.Context, user model.User, team model.Team, invitedBy string) {
	if err := s.notifier.TeamMemberAdded(ctx, user, team, invitedBy); err != nil {
		slog.WarnContext(ctx, "Failed to notify new team member", "error", err, "teamID", team.ID, "userID", user.ID)
	}
}

// uniqueIDs drops nil ids, exclude and repeats while keeping order.
func uniqueIDs(ids []uuid.UUID, exclude uuid.UUID) []uuid.UUID {
	seen := map[uuid.UUID]bool{exclude: true, uuid.Nil: true}
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
