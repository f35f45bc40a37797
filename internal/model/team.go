// internal/model/team.go
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TeamRole is ordered: every role grants everything the roles below it grant.
type TeamRole string

const (
	RoleMember TeamRole = "MEMBER"
	RoleOwner  TeamRole = "OWNER"
)

var roleRank = map[TeamRole]int{
	RoleMember: 1,
	RoleOwner:  2,
}

// Valid reports whether r is a known role.
func (r TeamRole) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r is at least as privileged as min. Unknown roles
// never satisfy a check.
func (r TeamRole) AtLeast(min TeamRole) bool {
	have, ok := roleRank[r]
	if !ok {
		return false
	}
	return have >= roleRank[min]
}

// ParseTeamRole accepts the role name in any case. An empty string yields RoleMember.
func ParseTeamRole(s string) (TeamRole, error) {
	if s == "" {
		return RoleMember, nil
	}
	r := TeamRole(strings.ToUpper(s))
	if !r.Valid() {
		return "", fmt.Errorf("unknown team role %q", s)
	}
	return r, nil
}

type Team struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:text;not null"`
	Description *string   `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Members []TeamMember `gorm:"foreignKey:TeamID"`
}

type TeamMember struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TeamID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_team_user"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_team_user"`
	Role     TeamRole  `gorm:"type:team_role;not null;default:'MEMBER'"`
	JoinedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`

	Team *Team `gorm:"foreignKey:TeamID"`
	User *User `gorm:"foreignKey:UserID"`
}

// Owner returns the owning membership of a team loaded with its members.
func (t *Team) Owner() *TeamMember {
	for i := range t.Members {
		if t.Members[i].Role == RoleOwner {
			return &t.Members[i]
		}
	}
	return nil
}
