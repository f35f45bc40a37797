// internal/repository/visualization.go
package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/vizboard/internal/domain"
	"github.com/dangerclosesec/vizboard/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VisualizationRepositoryIface interface {
	Create(ctx context.Context, viz *model.Visualization) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Visualization, error)
	ListByDataset(ctx context.Context, datasetID uuid.UUID) ([]model.Visualization, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Visualization, error)
	Update(ctx context.Context, viz *model.Visualization) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type VisualizationRepository struct {
	db *gorm.DB
}

func NewVisualizationRepository(db *gorm.DB) *VisualizationRepository {
	return &VisualizationRepository{db: db}
}

func (r *VisualizationRepository) Create(ctx context.Context, viz *model.Visualization) error {
	if err := r.db.WithContext(ctx).Omit("Dataset").Create(viz).Error; err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrDatasetNotFound
		}
		return fmt.Errorf("creating visualization: %w", err)
	}
	return nil
}

func (r *VisualizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Visualization, error) {
	var viz model.Visualization
	if err := r.db.WithContext(ctx).First(&viz, "id = ?", id).Error; err != nil {
		if nf := notFound(err, domain.ErrVisualizationNotFound); nf != nil {
			return nil, nf
		}
		return nil, fmt.Errorf("finding visualization: %w", err)
	}
	return &viz, nil
}

func (r *VisualizationRepository) ListByDataset(ctx context.Context, datasetID uuid.UUID) ([]model.Visualization, error) {
	var vizs []model.Visualization
	if err := r.db.WithContext(ctx).
		Where("dataset_id = ?", datasetID).
		Order("created_at DESC").
		Find(&vizs).Error; err != nil {
		return nil, fmt.Errorf("listing visualizations: %w", err)
	}
	return vizs, nil
}

// ListByOwner returns the visualizations of every dataset the user owns.
func (r *VisualizationRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Visualization, error) {
	var vizs []model.Visualization
	if err := r.db.WithContext(ctx).
		Joins("JOIN datasets ON datasets.id = visualizations.dataset_id").
		Where("datasets.owner_id = ?", ownerID).
		Order("visualizations.created_at DESC").
		Find(&vizs).Error; err != nil {
		return nil, fmt.Errorf("listing owned visualizations: %w", err)
	}
	return vizs, nil
}

func (r *VisualizationRepository) Update(ctx context.Context, viz *model.Visualization) error {
	result := r.db.WithContext(ctx).
		Model(viz).
		Select("Title", "Description", "Type", "Config", "UpdatedAt").
		Updates(viz)
	if result.Error != nil {
		return fmt.Errorf("updating visualization: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrVisualizationNotFound
	}
	return nil
}

func (r *VisualizationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("viz_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return fmt.Errorf("deleting comments: %w", err)
		}
		result := tx.Delete(&model.Visualization{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("deleting visualization: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrVisualizationNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
