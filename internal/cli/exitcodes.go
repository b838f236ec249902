package cli

import (
	"errors"

	"github.com/thenoetrevino/dacite/internal/editor"
	columnservice "github.com/thenoetrevino/dacite/internal/services/column"
	referenceservice "github.com/thenoetrevino/dacite/internal/services/reference"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or an update that names no field to change.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Column, group or reference IDs that don't exist.
	ExitNotFound = 3

	// ExitDataErr indicates input that could not be parsed.
	// Use for: A column number that is not an integer.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Blank names, years out of range, malformed URLs or numbers.
	ExitValidation = 5
)

// UsageError marks an error caused by how the command was invoked
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by a command to the process exit code
func ExitCode(err error) int {
	var usage *UsageError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &usage),
		errors.Is(err, editor.ErrNoChanges):
		return ExitUsage
	case errors.Is(err, columnservice.ErrColumnNotFound),
		errors.Is(err, columnservice.ErrGroupNotFound),
		errors.Is(err, referenceservice.ErrReferenceNotFound):
		return ExitNotFound
	case errors.Is(err, editor.ErrInvalidNumber):
		return ExitDataErr
	case errors.Is(err, columnservice.ErrEmptyName),
		errors.Is(err, columnservice.ErrNameTooLong),
		errors.Is(err, columnservice.ErrNotesTooLong),
		errors.Is(err, columnservice.ErrInvalidColumnID),
		errors.Is(err, columnservice.ErrInvalidGroupID),
		errors.Is(err, referenceservice.ErrEmptyAuthor),
		errors.Is(err, referenceservice.ErrInvalidYear),
		errors.Is(err, referenceservice.ErrEmptyCitation),
		errors.Is(err, referenceservice.ErrInvalidURL),
		errors.Is(err, referenceservice.ErrInvalidID):
		return ExitValidation
	default:
		return ExitError
	}
}

// ErrorCode returns the machine-readable code reported in the JSON error envelope
func ErrorCode(err error) string {
	switch ExitCode(err) {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitDataErr:
		return "DATA_ERROR"
	case ExitValidation:
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}
