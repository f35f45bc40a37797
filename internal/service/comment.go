package service

import (
	"context"
	"strings"

	"github.com/dangerclosesec/vizboard/internal/access"
	"github.com/dangerclosesec/vizboard/internal/model"
	"github.com/dangerclosesec/vizboard/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const msgNotCommentAuthor = "You can only delete your own comments"

type CommentService struct {
	repo           repository.CommentRepositoryIface
	visualizations *VisualizationService
	authz          *access.Authorizer
	validate       *validator.Validate
}

func NewCommentService(
	repo repository.CommentRepositoryIface,
	visualizations *VisualizationService,
	authz *access.Authorizer,
) *CommentService {
	return &CommentService{
		repo:           repo,
		visualizations: visualizations,
		authz:          authz,
		validate:       newValidator(),
	}
}

// CreateCommentInput carries no author: comments are always written as the caller.
type CreateCommentInput struct {
	VizID   uuid.UUID `json:"vizId" validate:"required"`
	Content string    `json:"content" validate:"required,notblank,max=2000"`
}

// List returns the comments on a visualization the caller can see, newest first.
func (s *CommentService) List(ctx context.Context, vizID uuid.UUID) ([]model.Comment, error) {
	if _, err := s.visualizations.Get(ctx, vizID); err != nil {
		return nil, err
	}
	return s.repo.ListByVisualization(ctx, vizID)
}

func (s *CommentService) Create(ctx context.Context, input CreateCommentInput) (*model.Comment, error) {
	grant, err := s.authz.RequireAuth(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.validate.Struct(input); err != nil {
		return nil, validationFailed(err)
	}

	if _, err := s.visualizations.Get(ctx, input.VizID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		Content:  strings.TrimSpace(input.Content),
		AuthorID: grant.UserID,
		VizID:    input.VizID,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes a comment. Only its author may delete it.
func (s *CommentService) Delete(ctx context.Context, commentID uuid.UUID) error {
	if _, err := s.authz.RequireAuth(ctx); err != nil {
		return err
	}

	comment, err := s.repo.FindByID(ctx, commentID)
	if err != nil {
		return err
	}

	object := model.Entity{Type: model.EntityComment, ID: comment.ID.String()}
	if _, err := s.authz.RequireOwnership(ctx, object, comment.AuthorID, model.PermissionCommentDelete, msgNotCommentAuthor); err != nil {
		return err
	}

	return s.repo.Delete(ctx, commentID)
}
