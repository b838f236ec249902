package editor

import "errors"

// Editor errors
var (
	// ErrInvalidNumber is returned by the numeric binder when the input is not an integer
	ErrInvalidNumber = errors.New("column number must be a whole number")

	// ErrNotBindable is returned when a text binder is requested for a non-text field
	ErrNotBindable = errors.New("field cannot be bound to a text input")

	// ErrClosed is returned when submitting an editor that was already submitted or cancelled
	ErrClosed = errors.New("editor is closed")

	// ErrNoChanges is returned when submitting a draft that has not been patched
	ErrNoChanges = errors.New("no changes to save")

	// ErrRefsNotLoaded is returned when selecting a reference before candidates have loaded
	ErrRefsNotLoaded = errors.New("references are still loading")

	// ErrNoPersister is returned when submitting an editor built without a persister
	ErrNoPersister = errors.New("editor has no persister")
)
