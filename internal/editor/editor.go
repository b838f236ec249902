// Package editor holds the draft state of a column edit and the patch actions that change it.
package editor

import (
	"context"
	"fmt"
	"log/slog"
)

// Persister stores a finished draft. changed lists the fields patched since load.
// It returns the draft as stored, with any ids assigned by the store.
type Persister interface {
	PersistChanges(ctx context.Context, final Draft, changed []Field) (Draft, error)
}

// PersisterFunc adapts a function to the Persister interface
type PersisterFunc func(ctx context.Context, final Draft, changed []Field) (Draft, error)

// PersistChanges calls f
func (f PersisterFunc) PersistChanges(ctx context.Context, final Draft, changed []Field) (Draft, error) {
	return f(ctx, final, changed)
}

// Status is the lifecycle state of an editor
type Status int

const (
	StatusEditing Status = iota
	StatusSubmitted
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusEditing:
		return "editing"
	case StatusSubmitted:
		return "submitted"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Editor owns one column draft from load until submit or cancel.
// It is not safe for concurrent use.
type Editor struct {
	initial   Draft
	current   Draft
	changed   [fieldCount]bool
	dirty     bool
	status    Status
	persister Persister
	listeners []func(Draft)
	logger    *slog.Logger
}

// Option configures an Editor
type Option func(*Editor)

// WithLogger sets the logger used for editor lifecycle events
func WithLogger(logger *slog.Logger) Option {
	return func(e *Editor) {
		e.logger = logger
	}
}

// New creates an editor seeded with initial. persister may be nil for read-only previews.
func New(initial Draft, persister Persister, opts ...Option) *Editor {
	e := &Editor{
		initial:   initial,
		current:   initial.clone(),
		persister: persister,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Current returns the current draft
func (e *Editor) Current() Draft {
	return e.current.clone()
}

// Initial returns the draft the editor was opened with
func (e *Editor) Initial() Draft {
	return e.initial.clone()
}

// Status returns the lifecycle state
func (e *Editor) Status() Status {
	return e.status
}

// HasChanges reports whether any patch was applied since load
func (e *Editor) HasChanges() bool {
	return e.dirty
}

// ChangedFields returns the patched fields in display order
func (e *Editor) ChangedFields() []Field {
	var fields []Field
	for _, f := range Fields() {
		if e.changed[f] {
			fields = append(fields, f)
		}
	}
	return fields
}

// Subscribe registers fn to be called with the new draft after every applied patch
func (e *Editor) Subscribe(fn func(Draft)) {
	e.listeners = append(e.listeners, fn)
}

// ApplyPatch replaces one field of the draft and marks the editor dirty.
// Patches on a closed editor are dropped.
func (e *Editor) ApplyPatch(p Patch) {
	if e.status != StatusEditing {
		e.logger.Debug("dropping patch on closed editor", "field", p.Field().String(), "status", e.status.String())
		return
	}
	e.current = e.current.Apply(p)
	e.changed[p.Field()] = true
	e.dirty = true

	for _, fn := range e.listeners {
		fn(e.current.clone())
	}
}

// Submit hands the draft to the persister. On failure the editor stays open so the
// user can retry; on success it is closed and the stored draft is returned.
func (e *Editor) Submit(ctx context.Context) (Draft, error) {
	if e.status != StatusEditing {
		return Draft{}, ErrClosed
	}
	if !e.dirty {
		return Draft{}, ErrNoChanges
	}
	if e.persister == nil {
		return Draft{}, ErrNoPersister
	}

	changed := e.ChangedFields()
	saved, err := e.persister.PersistChanges(ctx, e.current.clone(), changed)
	if err != nil {
		e.logger.Error("failed to persist column draft", "column_id", e.current.ColumnID, "error", err)
		return Draft{}, fmt.Errorf("failed to save column: %w", err)
	}

	e.status = StatusSubmitted
	e.logger.Info("column draft saved", "column_id", saved.ColumnID, "changed", len(changed))
	return saved, nil
}

// Cancel discards the draft without persisting anything
func (e *Editor) Cancel() {
	if e.status != StatusEditing {
		return
	}
	e.status = StatusCancelled
	e.logger.Debug("column draft discarded", "column_id", e.current.ColumnID, "had_changes", e.dirty)
}
