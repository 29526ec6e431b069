package entity

import (
	"errors"
	"fmt"
)

var (
	ErrValidation      = errors.New("validation error")
	ErrMissingImage    = errors.New("image is required")
	ErrInvalidCategory = errors.New("category does not exist")
	ErrNotFound        = errors.New("not found")
	ErrAssetStore      = errors.New("asset store error")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrConflict        = errors.New("conflict")
)

// ValidationError names the field that failed a required or range check.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s is invalid", e.Field)
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// CategoryError reports a course category name with no matching category.
type CategoryError struct {
	Name string
}

func (e *CategoryError) Error() string {
	return fmt.Sprintf("category %q does not exist", e.Name)
}

func (e *CategoryError) Is(target error) bool {
	return target == ErrInvalidCategory
}

// AssetError wraps a failure returned by the remote asset store.
type AssetError struct {
	Op  string
	Key string
	Err error
}

func (e *AssetError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("asset %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("asset %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *AssetError) Unwrap() error { return e.Err }

func (e *AssetError) Is(target error) bool {
	return target == ErrAssetStore
}

func NotFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
}
