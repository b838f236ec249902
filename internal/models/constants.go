package models

// ============================================================================
// FIELD LIMITS
// ============================================================================

// MaxColumnNameLength is the longest column name the services accept
const MaxColumnNameLength = 100

// MaxNotesLength caps the notes textarea
const MaxNotesLength = 4000

// MinPubYear and MaxPubYear bound the publication year of a reference
const (
	MinPubYear = 1600
	MaxPubYear = 2100
)
