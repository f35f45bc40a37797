package service

import (
	"fmt"
	"strings"

	"github.com/dangerclosesec/vizboard/internal/domain"
	"github.com/go-playground/validator/v10"
)

// newValidator returns a validator whose "notblank" tag rejects
// whitespace-only strings.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// validationFailed wraps a validator error so it matches domain.ErrInvalidInput
// while keeping the field errors reachable with errors.As.
func validationFailed(err error) error {
	return fmt.Errorf("validation failed: %w: %w", domain.ErrInvalidInput, err)
}
