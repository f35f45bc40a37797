// internal/repository/team.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/vizboard/internal/domain"
	"github.com/dangerclosesec/vizboard/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TeamRepositoryIface interface {
	Create(ctx context.Context, team *model.Team) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Team, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Team, error)
	FindMember(ctx context.Context, teamID, userID uuid.UUID) (*model.TeamMember, error)
	AddMember(ctx context.Context, member *model.TeamMember) (bool, error)
	RemoveMember(ctx context.Context, teamID, userID uuid.UUID) error
	Disband(ctx context.Context, teamID uuid.UUID) (int64, error)
}

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create inserts the team and all of team.Members in one transaction, so the
// owner membership can never exist without its team or vice versa.
func (r *TeamRepository) Create(ctx context.Context, team *model.Team) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Members").Create(team).Error; err != nil {
			return fmt.Errorf("creating team: %w", err)
		}

		for i := range team.Members {
			team.Members[i].TeamID = team.ID
			if err := tx.Omit(clause.Associations).Create(&team.Members[i]).Error; err != nil {
				if isUniqueViolation(err) {
					return domain.ErrAlreadyMember
				}
				if isForeignKeyViolation(err) {
					return domain.ErrUserNotFound
				}
				return fmt.Errorf("creating team member: %w", err)
			}
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrAlreadyMember) || errors.Is(err, domain.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

func (r *TeamRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Team, error) {
	var team model.Team
	err := r.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("team_members.joined_at ASC")
		}).
		Preload("Members.User").
		First(&team, "id = ?", id).Error
	if err != nil {
		if nf := notFound(err, domain.ErrTeamNotFound); nf != nil {
			return nil, nf
		}
		return nil, fmt.Errorf("finding team: %w", err)
	}
	return &team, nil
}

// FindByUser returns every team the user belongs to, with all memberships loaded.
func (r *TeamRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Team, error) {
	var teams []model.Team
	if err := r.db.WithContext(ctx).
		Preload("Members").
		Joins("JOIN team_members ON teams.id = team_members.team_id").
		Where("team_members.user_id = ?", userID).
		Order("teams.created_at DESC").
		Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("finding user teams: %w", err)
	}
	return teams, nil
}

func (r *TeamRepository) FindMember(ctx context.Context, teamID, userID uuid.UUID) (*model.TeamMember, error) {
	var member model.TeamMember
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		First(&member).Error
	if err != nil {
		if nf := notFound(err, domain.ErrMemberNotFound); nf != nil {
			return nil, nf
		}
		return nil, fmt.Errorf("finding team member: %w", err)
	}
	return &member, nil
}

// AddMember inserts the membership unless the (team, user) pair already
// exists. It reports false, without error, for an existing pair.
func (r *TeamRepository) AddMember(ctx context.Context, member *model.TeamMember) (bool, error) {
	result := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "team_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(member)
	if result.Error != nil {
		switch {
		case isUniqueViolation(result.Error):
			return false, nil
		case isForeignKeyViolation(result.Error):
			return false, fmt.Errorf("adding team member: %w", domain.ErrNotFound)
		}
		return false, fmt.Errorf("adding team member: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *TeamRepository) RemoveMember(ctx context.Context, teamID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&model.TeamMember{})
	if result.Error != nil {
		return fmt.Errorf("removing team member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrMemberNotFound
	}
	return nil
}

// Disband deletes the team and its memberships. TEAM datasets shared with the
// team fall back to PRIVATE under their original owner in the same
// transaction. It returns the number of datasets reassigned.
func (r *TeamRepository) Disband(ctx context.Context, teamID uuid.UUID) (int64, error) {
	var reassigned int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Dataset{}).
			Where("team_id = ?", teamID).
			Updates(map[string]interface{}{
				"visibility": model.VisibilityPrivate,
				"team_id":    gorm.Expr("NULL"),
			})
		if result.Error != nil {
			return fmt.Errorf("reassigning team datasets: %w", result.Error)
		}
		reassigned = result.RowsAffected

		if err := tx.Where("team_id = ?", teamID).Delete(&model.TeamMember{}).Error; err != nil {
			return fmt.Errorf("deleting team members: %w", err)
		}

		result = tx.Delete(&model.Team{}, "id = ?", teamID)
		if result.Error != nil {
			return fmt.Errorf("deleting team: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrTeamNotFound
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("transaction failed: %w", err)
	}

	return reassigned, nil
}
