package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dangerclosesec/vizboard/internal/domain"
	"github.com/dangerclosesec/vizboard/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultAuditQueryLimit = 100

type AuthzAuditLogRepositoryIface interface {
	Create(ctx context.Context, log *model.AuthzAuditLog) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.AuthzAuditLog, error)
	Query(ctx context.Context, params QueryParams) ([]model.AuthzAuditLog, int64, error)
}

// AuthzAuditLogRepository stores the access decisions taken by the authorizer
type AuthzAuditLogRepository struct {
	db *gorm.DB
}

func NewAuthzAuditLogRepository(db *gorm.DB) *AuthzAuditLogRepository {
	return &AuthzAuditLogRepository{db: db}
}

func (r *AuthzAuditLogRepository) Create(ctx context.Context, log *model.AuthzAuditLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return fmt.Errorf("failed to create authorization audit log: %w", err)
	}
	return nil
}

func (r *AuthzAuditLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.AuthzAuditLog, error) {
	var log model.AuthzAuditLog
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&log).Error; err != nil {
		if nf := notFound(err, domain.ErrNotFound); nf != nil {
			return nil, fmt.Errorf("audit log %w", nf)
		}
		return nil, fmt.Errorf("failed to find authorization audit log: %w", err)
	}
	return &log, nil
}

// QueryParams filters audit log queries; zero values are ignored
type QueryParams struct {
	ActionType  string
	EntityType  string
	EntityID    string
	SubjectType string
	SubjectID   string
	Permission  string
	Result      *bool
	StartTime   time.Time
	EndTime     time.Time
	Limit       int
	Offset      int
}

// Query returns one page of matching entries, newest first, and the total match count.
func (r *AuthzAuditLogRepository) Query(ctx context.Context, params QueryParams) ([]model.AuthzAuditLog, int64, error) {
	var logs []model.AuthzAuditLog
	var count int64

	query := r.db.WithContext(ctx).Model(&model.AuthzAuditLog{})

	filters := []struct {
		column string
		value  string
	}{
		{"action_type", params.ActionType},
		{"entity_type", params.EntityType},
		{"entity_id", params.EntityID},
		{"subject_type", params.SubjectType},
		{"subject_id", params.SubjectID},
		{"permission", params.Permission},
	}
	for _, f := range filters {
		if f.value != "" {
			query = query.Where(f.column+" = ?", f.value)
		}
	}
	if params.Result != nil {
		query = query.Where("result = ?", *params.Result)
	}
	if !params.StartTime.IsZero() {
		query = query.Where("timestamp >= ?", params.StartTime)
	}
	if !params.EndTime.IsZero() {
		query = query.Where("timestamp <= ?", params.EndTime)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count authorization audit logs: %w", err)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultAuditQueryLimit
	}
	query = query.Limit(limit)
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	if err := query.Order("timestamp DESC").Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to query authorization audit logs: %w", err)
	}
	return logs, count, nil
}
