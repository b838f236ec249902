package reference

import "errors"

// Reference-related errors
var (
	// Validation errors
	ErrEmptyAuthor   = errors.New("author cannot be empty")
	ErrInvalidYear   = errors.New("publication year is out of range")
	ErrEmptyCitation = errors.New("citation cannot be empty")
	ErrInvalidURL    = errors.New("url must start with http:// or https://")
	ErrInvalidID     = errors.New("invalid reference ID")

	// Business logic errors
	ErrReferenceNotFound = errors.New("reference not found")
)
