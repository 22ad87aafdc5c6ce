// Package error defines domain-specific errors for the budget planner.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when no registry entry matches the given name.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrMissingCategoryFields is returned when a category name is empty.
	ErrMissingCategoryFields = errors.New("category name is required")

	// ErrCategoryNameTooLong is returned when a category name exceeds the maximum length.
	ErrCategoryNameTooLong = errors.New("category name too long")

	// ErrInvalidColorFormat is returned when a color is not a hex color.
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrCategoryIconTooLong is returned when an icon name exceeds the maximum length.
	ErrCategoryIconTooLong = errors.New("category icon too long")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingCategoryFields CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNameTooLong   CategoryErrorCode = "CAT-010002"
	ErrCodeInvalidColorFormat    CategoryErrorCode = "CAT-010003"
	ErrCodeCategoryIconTooLong   CategoryErrorCode = "CAT-010004"

	// Lookup errors (02XXXX)
	ErrCodeCategoryNotFound CategoryErrorCode = "CAT-020001"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
