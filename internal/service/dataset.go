package service

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/dangerclosesec/vizboard/internal/access"
	"github.com/dangerclosesec/vizboard/internal/domain"
	"github.com/dangerclosesec/vizboard/internal/model"
	"github.com/dangerclosesec/vizboard/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const msgNotDatasetOwner = "You don't have permission to modify this dataset"

type DatasetService struct {
	repo     repository.DatasetRepositoryIface
	teamRepo repository.TeamRepositoryIface
	authz    *access.Authorizer
	resolver *access.Resolver
	validate *validator.Validate
}

func NewDatasetService(
	repo repository.DatasetRepositoryIface,
	teamRepo repository.TeamRepositoryIface,
	authz *access.Authorizer,
	resolver *access.Resolver,
) *DatasetService {
	return &DatasetService{
		repo:     repo,
		teamRepo: teamRepo,
		authz:    authz,
		resolver: resolver,
		validate: newValidator(),
	}
}

// CreateDatasetInput has no owner field: the owner is always the caller.
type CreateDatasetInput struct {
	Name        string     `json:"name" validate:"required,notblank,max=255"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	FileName    string     `json:"fileName" validate:"required,notblank,max=255"`
	FileURL     string     `json:"fileUrl" validate:"required,url"`
	Visibility  string     `json:"visibility"`
	TeamID      *uuid.UUID `json:"teamId"`
}

// UpdateDatasetInput lists the only fields an owner may change. Nil means unchanged.
type UpdateDatasetInput struct {
	Name        *string    `json:"name" validate:"omitempty,notblank,max=255"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	Visibility  *string    `json:"visibility"`
	TeamID      *uuid.UUID `json:"teamId"`
}

// FileLocation is where a dataset's uploaded file lives.
type FileLocation struct {
	FileName    string
	FileURL     string
	ContentType string
}

func (s *DatasetService) Create(ctx context.Context, input CreateDatasetInput) (*model.Dataset, error) {
	grant, err := s.authz.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.validate.Struct(input); err != nil {
		return nil, validationFailed(err)
	}

	visibility := model.VisibilityPrivate
	if input.Visibility != "" {
		if visibility, err = model.ParseVisibility(input.Visibility); err != nil {
			return nil, domain.ErrInvalidVisibility
		}
	}

	teamID, err := s.resolveTeam(ctx, visibility, input.TeamID, nil)
	if err != nil {
		return nil, err
	}

	dataset := &model.Dataset{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		FileName:    input.FileName,
		FileURL:     input.FileURL,
		OwnerID:     grant.UserID,
		Visibility:  visibility,
		TeamID:      teamID,
	}

	if err := s.repo.Create(ctx, dataset); err != nil {
		return nil, fmt.Errorf("creating dataset: %w", err)
	}

	return s.reload(ctx, dataset.ID)
}

// List returns the datasets the caller may see, newest first. teamID scopes
// TEAM datasets to one team; it is ignored if the caller is not a member.
func (s *DatasetService) List(ctx context.Context, teamID *uuid.UUID) ([]model.Dataset, error) {
	scope, err := s.resolver.ListingScope(ctx, teamID)
	if err != nil {
		return nil, err
	}

	datasets, err := s.repo.List(ctx, repository.DatasetListFilter{
		CallerID: scope.CallerID,
		TeamID:   scope.TeamID,
	})
	if err != nil {
		return nil, fmt.Errorf("listing datasets: %w", err)
	}
	return datasets, nil
}

func (s *DatasetService) Get(ctx context.Context, id uuid.UUID) (*model.Dataset, error) {
	if _, err := s.authz.RequireAuth(ctx); err != nil {
		return nil, err
	}

	dataset, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.resolver.CanAccess(ctx, dataset); err != nil {
		return nil, err
	}
	return dataset, nil
}

// Update applies the allow-listed fields. Only the owner may update. A TEAM
// result must reference an existing team, and moving the dataset into a team
// requires the owner to belong to it.
func (s *DatasetService) Update(ctx context.Context, id uuid.UUID, input UpdateDatasetInput) (*model.Dataset, error) {
	dataset, err := s.ownedDataset(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validate.Struct(input); err != nil {
		return nil, validationFailed(err)
	}

	visibility := dataset.Visibility
	if input.Visibility != nil {
		if visibility, err = model.ParseVisibility(*input.Visibility); err != nil {
			return nil, domain.ErrInvalidVisibility
		}
	}

	var current *uuid.UUID
	if dataset.Visibility == model.VisibilityTeam {
		current = dataset.TeamID
	}
	teamID, err := s.resolveTeam(ctx, visibility, input.TeamID, current)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		dataset.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		dataset.Description = input.Description
	}
	dataset.Visibility = visibility
	dataset.TeamID = teamID
	dataset.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, dataset); err != nil {
		return nil, err
	}

	return s.reload(ctx, dataset.ID)
}

// Delete removes an owned dataset along with its visualizations and their comments.
func (s *DatasetService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.ownedDataset(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// FileLocation returns where the dataset's file can be fetched from, after
// the same visibility check as Get.
func (s *DatasetService) FileLocation(ctx context.Context, id uuid.UUID) (*FileLocation, error) {
	dataset, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if dataset.FileURL == "" || dataset.FileName == "" {
		return nil, domain.ErrDatasetNotFound
	}

	return &FileLocation{
		FileName:    dataset.FileName,
		FileURL:     dataset.FileURL,
		ContentType: contentTypeFor(dataset.FileName),
	}, nil
}

func (s *DatasetService) ownedDataset(ctx context.Context, id uuid.UUID) (*model.Dataset, error) {
	if _, err := s.authz.RequireAuth(ctx); err != nil {
		return nil, err
	}

	dataset, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	object := model.Entity{Type: model.EntityDataset, ID: dataset.ID.String()}
	if _, err := s.authz.RequireOwnership(ctx, object, dataset.OwnerID, model.PermissionDatasetEdit, msgNotDatasetOwner); err != nil {
		return nil, err
	}
	return dataset, nil
}

// resolveTeam returns the team id the dataset should carry for visibility.
// requested is the team id from the request, current the one already stored.
// The caller must belong to a team it is sharing into; keeping the stored
// team only requires that the team still exists.
func (s *DatasetService) resolveTeam(ctx context.Context, visibility model.Visibility, requested, current *uuid.UUID) (*uuid.UUID, error) {
	if visibility != model.VisibilityTeam {
		if requested != nil {
			return nil, domain.ErrTeamNotAllowed
		}
		return nil, nil
	}

	teamID := requested
	if teamID == nil {
		teamID = current
	}
	if teamID == nil || *teamID == uuid.Nil {
		return nil, domain.ErrTeamRequired
	}

	if _, err := s.teamRepo.FindByID(ctx, *teamID); err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			return nil, domain.ErrTeamRequired
		}
		return nil, fmt.Errorf("loading team: %w", err)
	}

	if requested != nil || current == nil {
		if _, err := s.authz.RequireTeamMembership(ctx, *teamID); err != nil {
			return nil, err
		}
	}

	id := *teamID
	return &id, nil
}

func (s *DatasetService) reload(ctx context.Context, id uuid.UUID) (*model.Dataset, error) {
	dataset, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reloading dataset: %w", err)
	}
	return dataset, nil
}

var datasetContentTypes = map[string]string{
	".csv":  "text/csv",
	".json": "application/json",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".xls":  "application/vnd.ms-excel",
}

func contentTypeFor(fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	if ct, ok := datasetContentTypes[ext]; ok {
		return ct
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
