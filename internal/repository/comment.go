// internal/repository/comment.go
package repository

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/vizboard/internal/domain"
	"github.com/dangerclosesec/vizboard/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentRepositoryIface interface {
	Create(ctx context.Context, comment *model.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	ListByVisualization(ctx context.Context, vizID uuid.UUID) ([]model.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create inserts the comment and loads its author for display.
func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	db := r.db.WithContext(ctx)
	if err := db.Omit("Author", "Visualization").Create(comment).Error; err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrVisualizationNotFound
		}
		return fmt.Errorf("creating comment: %w", err)
	}
	if err := db.Preload("Author").First(comment, "id = ?", comment.ID).Error; err != nil {
		return fmt.Errorf("reloading comment: %w", err)
	}
	return nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		if nf := notFound(err, domain.ErrCommentNotFound); nf != nil {
			return nil, nf
		}
		return nil, fmt.Errorf("finding comment: %w", err)
	}
	return &comment, nil
}

func (r *CommentRepository) ListByVisualization(ctx context.Context, vizID uuid.UUID) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("viz_id = ?", vizID).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	return comments, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Comment{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("deleting comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}
