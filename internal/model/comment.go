// internal/model/comment.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Content   string    `gorm:"type:text;not null"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null"`
	VizID     uuid.UUID `gorm:"type:uuid;not null;index;column:viz_id"`
	CreatedAt time.Time

	Author        *User          `gorm:"foreignKey:AuthorID"`
	Visualization *Visualization `gorm:"foreignKey:VizID"`
}
