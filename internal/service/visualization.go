package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/dangerclosesec/vizboard/internal/access"
	"github.com/dangerclosesec/vizboard/internal/domain"
	"github.com/dangerclosesec/vizboard/internal/model"
	"github.com/dangerclosesec/vizboard/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// VisualizationService guards visualizations with their parent dataset's
// visibility. Anyone who can view the dataset may also change its
// visualizations.
type VisualizationService struct {
	repo        repository.VisualizationRepositoryIface
	datasetRepo repository.DatasetRepositoryIface
	authz       *access.Authorizer
	resolver    *access.Resolver
	validate    *validator.Validate
}

func NewVisualizationService(
	repo repository.VisualizationRepositoryIface,
	datasetRepo repository.DatasetRepositoryIface,
	authz *access.Authorizer,
	resolver *access.Resolver,
) *VisualizationService {
	return &VisualizationService{
		repo:        repo,
		datasetRepo: datasetRepo,
		authz:       authz,
		resolver:    resolver,
		validate:    newValidator(),
	}
}

type CreateVisualizationInput struct {
	Title       string          `json:"title" validate:"required,notblank,max=255"`
	Description *string         `json:"description" validate:"omitempty,max=2000"`
	Type        string          `json:"type" validate:"required,notblank,max=50"`
	Config      json.RawMessage `json:"config" validate:"required"`
	DatasetID   uuid.UUID       `json:"datasetId" validate:"required"`
}

type UpdateVisualizationInput struct {
	Title       *string         `json:"title" validate:"omitempty,notblank,max=255"`
	Description *string         `json:"description" validate:"omitempty,max=2000"`
	Type        *string         `json:"type" validate:"omitempty,notblank,max=50"`
	Config      json.RawMessage `json:"config"`
}

// List returns a dataset's visualizations, or with no datasetID the
// visualizations of every dataset the caller owns.
func (s *VisualizationService) List(ctx context.Context, datasetID *uuid.UUID) ([]model.Visualization, error) {
	grant, err := s.authz.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}

	if datasetID == nil {
		return s.repo.ListByOwner(ctx, grant.UserID)
	}

	if _, err := s.parentDataset(ctx, *datasetID); err != nil {
		return nil, err
	}
	return s.repo.ListByDataset(ctx, *datasetID)
}

func (s *VisualizationService) Get(ctx context.Context, id uuid.UUID) (*model.Visualization, error) {
	viz, err := s.visible(ctx, id)
	if err != nil {
		return nil, err
	}
	return viz, nil
}

func (s *VisualizationService) Create(ctx context.Context, input CreateVisualizationInput) (*model.Visualization, error) {
	if _, err := s.authz.RequireAuth(ctx); err != nil {
		return nil, err
	}

	if err := s.validate.Struct(input); err != nil {
		return nil, validationFailed(err)
	}
	if !json.Valid(input.Config) {
		return nil, domain.ErrInvalidConfig
	}

	if _, err := s.parentDataset(ctx, input.DatasetID); err != nil {
		return nil, err
	}

	viz := &model.Visualization{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Type:        strings.TrimSpace(input.Type),
		Config:      datatypes.JSON(input.Config),
		DatasetID:   input.DatasetID,
	}
	if err := s.repo.Create(ctx, viz); err != nil {
		return nil, err
	}
	return viz, nil
}

// Update changes the supplied fields; last write wins.
func (s *VisualizationService) Update(ctx context.Context, id uuid.UUID, input UpdateVisualizationInput) (*model.Visualization, error) {
	viz, err := s.visible(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validate.Struct(input); err != nil {
		return nil, validationFailed(err)
	}

	if input.Title != nil {
		viz.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		viz.Description = input.Description
	}
	if input.Type != nil {
		viz.Type = strings.TrimSpace(*input.Type)
	}
	if len(input.Config) > 0 {
		if !json.Valid(input.Config) {
			return nil, domain.ErrInvalidConfig
		}
		viz.Config = datatypes.JSON(input.Config)
	}
	viz.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, viz); err != nil {
		return nil, err
	}
	return viz, nil
}

// Delete removes the visualization and its comments.
func (s *VisualizationService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.visible(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// visible loads a visualization the caller may see through its dataset.
func (s *VisualizationService) visible(ctx context.Context, id uuid.UUID) (*model.Visualization, error) {
	if _, err := s.authz.RequireAuth(ctx); err != nil {
		return nil, err
	}

	viz, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.parentDataset(ctx, viz.DatasetID); err != nil {
		return nil, err
	}
	return viz, nil
}

func (s *VisualizationService) parentDataset(ctx context.Context, datasetID uuid.UUID) (*model.Dataset, error) {
	dataset, err := s.datasetRepo.FindByID(ctx, datasetID)
	if err != nil {
		return nil, err
	}
	if _, err := s.resolver.CanAccess(ctx, dataset); err != nil {
		return nil, err
	}
	return dataset, nil
}
