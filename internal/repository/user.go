// internal/repository/user.go
package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/dangerclosesec/vizboard/internal/domain"
	"github.com/dangerclosesec/vizboard/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepositoryIface interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Search(ctx context.Context, query string, excludeID uuid.UUID, limit int) ([]model.User, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	result := r.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		return fmt.Errorf("failed to create user: %w", result.Error)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).First(&user, "id = ?", id)
	if result.Error != nil {
		if err := notFound(result.Error, domain.ErrUserNotFound); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find user: %w", result.Error)
	}
	return &user, nil
}

// FindByIDs returns the users that exist among ids; missing ids are simply absent.
func (r *UserRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.User, error) {
	var users []model.User
	if len(ids) == 0 {
		return users, nil
	}
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find users: %w", result.Error)
	}
	return users, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).Where("LOWER(email) = ?", strings.ToLower(email)).First(&user)
	if result.Error != nil {
		if err := notFound(result.Error, domain.ErrUserNotFound); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find user: %w", result.Error)
	}
	return &user, nil
}

// Search matches name or email case-insensitively, excluding one user (the caller).
func (r *UserRepository) Search(ctx context.Context, query string, excludeID uuid.UUID, limit int) ([]model.User, error) {
	var users []model.User
	pattern := "%" + escapeLike(query) + "%"
	result := r.db.WithContext(ctx).
		Where("(name ILIKE ? OR email ILIKE ?) AND id <> ?", pattern, pattern, excludeID).
		Order("name ASC").
		Limit(limit).
		Find(&users)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to search users: %w", result.Error)
	}
	return users, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
