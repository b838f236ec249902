package column

import "errors"

// Column-related errors
var (
	// Validation errors
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrNameTooLong     = errors.New("name cannot exceed 100 characters")
	ErrNotesTooLong    = errors.New("notes cannot exceed 4000 characters")
	ErrInvalidColumnID = errors.New("invalid column ID")
	ErrInvalidGroupID  = errors.New("invalid column group ID")

	// Business logic errors
	ErrColumnNotFound = errors.New("column not found")
	ErrGroupNotFound  = errors.New("column group not found")
)
