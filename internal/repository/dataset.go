// internal/repository/dataset.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/vizboard/internal/domain"
	"github.com/dangerclosesec/vizboard/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DatasetListFilter describes which datasets a caller may see in a listing.
// TeamID is set only once the caller's membership of that team is confirmed.
type DatasetListFilter struct {
	CallerID uuid.UUID
	TeamID   *uuid.UUID
}

type DatasetRepositoryIface interface {
	Create(ctx context.Context, dataset *model.Dataset) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Dataset, error)
	List(ctx context.Context, filter DatasetListFilter) ([]model.Dataset, error)
	Update(ctx context.Context, dataset *model.Dataset) error
	Delete(ctx context.Context, id uuid.UUID) error
	RepairTeamless(ctx context.Context, dryRun bool) (int64, error)
}

type DatasetRepository struct {
	db *gorm.DB
}

func NewDatasetRepository(db *gorm.DB) *DatasetRepository {
	return &DatasetRepository{db: db}
}

const visualizationCountColumn = "(SELECT COUNT(*) FROM visualizations WHERE visualizations.dataset_id = datasets.id) AS visualization_count"

func (r *DatasetRepository) withSummary(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.Dataset{}).
		Select("datasets.*, " + visualizationCountColumn).
		Preload("Owner").
		Preload("Team")
}

func (r *DatasetRepository) Create(ctx context.Context, dataset *model.Dataset) error {
	if err := checkTeamPairing(dataset); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Omit("Owner", "Team").Create(dataset).Error; err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("creating dataset: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("creating dataset: %w", err)
	}
	return nil
}

func (r *DatasetRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Dataset, error) {
	var dataset model.Dataset
	if err := r.withSummary(ctx).First(&dataset, "datasets.id = ?", id).Error; err != nil {
		if nf := notFound(err, domain.ErrDatasetNotFound); nf != nil {
			return nil, nf
		}
		return nil, fmt.Errorf("finding dataset: %w", err)
	}
	return &dataset, nil
}

// List returns, newest first, the datasets that are PUBLIC, PRIVATE and owned
// by the caller, or TEAM-shared with filter.TeamID.
func (r *DatasetRepository) List(ctx context.Context, filter DatasetListFilter) ([]model.Dataset, error) {
	var datasets []model.Dataset

	visible := r.db.Where("datasets.visibility = ?", model.VisibilityPublic).
		Or("datasets.visibility = ? AND datasets.owner_id = ?", model.VisibilityPrivate, filter.CallerID)
	if filter.TeamID != nil {
		visible = visible.Or("datasets.visibility = ? AND datasets.team_id = ?", model.VisibilityTeam, *filter.TeamID)
	}

	if err := r.withSummary(ctx).
		Where(visible).
		Order("datasets.created_at DESC").
		Find(&datasets).Error; err != nil {
		return nil, fmt.Errorf("listing datasets: %w", err)
	}
	return datasets, nil
}

// Update writes the mutable columns only: name, description, visibility and team.
func (r *DatasetRepository) Update(ctx context.Context, dataset *model.Dataset) error {
	if err := checkTeamPairing(dataset); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(dataset).
		Select("Name", "Description", "Visibility", "TeamID", "UpdatedAt").
		Updates(dataset)
	if result.Error != nil {
		return fmt.Errorf("updating dataset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrDatasetNotFound
	}
	return nil
}

// Delete removes the dataset together with its visualizations and their comments.
func (r *DatasetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		vizIDs := tx.Model(&model.Visualization{}).Select("id").Where("dataset_id = ?", id)

		if err := tx.Where("viz_id IN (?)", vizIDs).Delete(&model.Comment{}).Error; err != nil {
			return fmt.Errorf("deleting comments: %w", err)
		}

		if err := tx.Where("dataset_id = ?", id).Delete(&model.Visualization{}).Error; err != nil {
			return fmt.Errorf("deleting visualizations: %w", err)
		}

		result := tx.Delete(&model.Dataset{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("deleting dataset: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrDatasetNotFound
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrDatasetNotFound) {
			return err
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// RepairTeamless moves TEAM datasets that lost their team back to PRIVATE.
// With dryRun set it only counts them.
func (r *DatasetRepository) RepairTeamless(ctx context.Context, dryRun bool) (int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Dataset{}).
		Where("visibility = ? AND team_id IS NULL", model.VisibilityTeam)

	if dryRun {
		var count int64
		if err := query.Count(&count).Error; err != nil {
			return 0, fmt.Errorf("counting teamless datasets: %w", err)
		}
		return count, nil
	}

	result := query.Update("visibility", model.VisibilityPrivate)
	if result.Error != nil {
		return 0, fmt.Errorf("repairing teamless datasets: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// checkTeamPairing rejects a write that would break the visibility/team
// pairing before it reaches the database constraint.
func checkTeamPairing(dataset *model.Dataset) error {
	if dataset.IsConsistent() {
		return nil
	}
	if dataset.Visibility == model.VisibilityTeam {
		return domain.ErrTeamRequired
	}
	return domain.ErrTeamNotAllowed
}
