package serializer

import (
	"github.com/dangerclosesec/vizboard/internal/model"
	"github.com/dangerclosesec/vizboard/internal/service"
	"github.com/google/uuid"
)

type MemberRecord struct {
	ID       uuid.UUID      `json:"id"`
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Image    *string        `json:"image,omitempty"`
	Role     model.TeamRole `json:"role"`
	JoinedAt string         `json:"joinedAt"`
}

type TeamRecord struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	CreatedAt   string         `json:"createdAt"`
	OwnerID     *uuid.UUID     `json:"ownerId"`
	Members     []MemberRecord `json:"members"`
}

// TeamSummaryRecord is one entry of the caller's team list.
type TeamSummaryRecord struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	CreatedAt   string         `json:"createdAt"`
	Role        model.TeamRole `json:"role"`
	MemberCount int            `json:"memberCount"`
}

// AddMembersRecord reports the outcome of adding members to a team.
type AddMembersRecord struct {
	Added   []MemberRecord `json:"added"`
	Skipped []uuid.UUID    `json:"skipped"`
}

// Member flattens a membership and its user. The id is the user's id.
func Member(m *model.TeamMember) MemberRecord {
	record := MemberRecord{
		ID:       m.UserID,
		Role:     m.Role,
		JoinedAt: isoTime(m.JoinedAt),
	}
	if m.User != nil {
		record.Name = m.User.Name
		record.Email = m.User.Email
		record.Image = m.User.Image
	}
	return record
}

func Team(t *model.Team) TeamRecord {
	record := TeamRecord{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		CreatedAt:   isoTime(t.CreatedAt),
		Members:     Many(t.Members, Member),
	}
	if owner := t.Owner(); owner != nil {
		ownerID := owner.UserID
		record.OwnerID = &ownerID
	}
	return record
}

func TeamSummary(s *service.TeamSummary) TeamSummaryRecord {
	return TeamSummaryRecord{
		ID:          s.Team.ID,
		Name:        s.Team.Name,
		Description: s.Team.Description,
		CreatedAt:   isoTime(s.Team.CreatedAt),
		Role:        s.Role,
		MemberCount: s.MemberCount,
	}
}

func AddMembers(r *service.AddMembersResult) AddMembersRecord {
	skipped := r.Skipped
	if skipped == nil {
		skipped = []uuid.UUID{}
	}
	return AddMembersRecord{
		Added:   Many(r.Added, Member),
		Skipped: skipped,
	}
}
