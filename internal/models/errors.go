package models

import "errors"

// Domain-level errors shared by the services and the stores
var (
	// ErrNotFound indicates that a requested record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrDraftReference indicates a draft reference (ID 0) was used where a persisted one is required
	ErrDraftReference = errors.New("reference has not been persisted")
)
