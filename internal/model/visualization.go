// internal/model/visualization.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Visualization has no visibility of its own; access follows the parent Dataset.
type Visualization struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string         `gorm:"type:text;not null" json:"title"`
	Description *string        `gorm:"type:text" json:"description"`
	Type        string         `gorm:"type:text;not null" json:"type"`
	Config      datatypes.JSON `gorm:"type:jsonb;not null" json:"config"`
	DatasetID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"datasetId"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`

	Dataset *Dataset `gorm:"foreignKey:DatasetID" json:"-"`
}
