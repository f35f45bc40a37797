// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

var (
	// General errors
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrConflict        = errors.New("conflict")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")

	// User-related errors
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)

	// Team-related errors
	ErrTeamNotFound     = fmt.Errorf("team %w", ErrNotFound)
	ErrMemberNotFound   = fmt.Errorf("team member %w", ErrNotFound)
	ErrAlreadyMember    = fmt.Errorf("user is already a member of this team: %w", ErrConflict)
	ErrCannotRemoveSelf = fmt.Errorf("team owner cannot remove themselves: %w", ErrInvalidInput)
	ErrInvalidRole      = fmt.Errorf("invalid team role: %w", ErrInvalidInput)

	// Dataset-related errors
	ErrDatasetNotFound   = fmt.Errorf("dataset %w", ErrNotFound)
	ErrInvalidVisibility = fmt.Errorf("invalid visibility: %w", ErrInvalidInput)
	ErrTeamRequired      = fmt.Errorf("team visibility requires a valid teamId: %w", ErrInvalidInput)
	ErrTeamNotAllowed    = fmt.Errorf("teamId is only allowed with team visibility: %w", ErrInvalidInput)

	// Visualization and comment errors
	ErrVisualizationNotFound = fmt.Errorf("visualization %w", ErrNotFound)
	ErrCommentNotFound       = fmt.Errorf("comment %w", ErrNotFound)
	ErrInvalidConfig         = fmt.Errorf("visualization config must be valid JSON: %w", ErrInvalidInput)
)
