// internal/model/dataset.go
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Visibility string

const (
	VisibilityPrivate Visibility = "PRIVATE"
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityTeam    Visibility = "TEAM"
)

func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPrivate, VisibilityPublic, VisibilityTeam:
		return true
	}
	return false
}

// ParseVisibility accepts the visibility name in any case.
func ParseVisibility(s string) (Visibility, error) {
	v := Visibility(strings.ToUpper(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("unknown visibility %q", s)
	}
	return v, nil
}

type Dataset struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string     `gorm:"type:text;not null"`
	Description *string    `gorm:"type:text"`
	FileName    string     `gorm:"type:text;not null"`
	FileURL     string     `gorm:"type:text;not null;column:file_url"`
	OwnerID     uuid.UUID  `gorm:"type:uuid;not null"`
	Visibility  Visibility `gorm:"type:dataset_visibility;not null;default:'PRIVATE'"`
	TeamID      *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// VisualizationCount is filled by listing queries only.
	VisualizationCount int64 `gorm:"->;-:migration"`

	Owner *User `gorm:"foreignKey:OwnerID"`
	Team  *Team `gorm:"foreignKey:TeamID"`
}

// IsConsistent reports whether the visibility/team pairing holds: TEAM datasets
// carry a team, PRIVATE and PUBLIC datasets never do.
func (d *Dataset) IsConsistent() bool {
	if d.Visibility == VisibilityTeam {
		return d.TeamID != nil && *d.TeamID != uuid.Nil
	}
	return d.TeamID == nil
}
