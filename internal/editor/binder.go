package editor

import (
	"fmt"
	"strconv"
	"strings"
)

// Binder connects one input widget to one draft field
type Binder struct {
	field  Field
	editor *Editor
}

// Bind returns a binder for a text-backed field (name, number or notes)
func (e *Editor) Bind(f Field) (Binder, error) {
	if f != FieldName && f != FieldNumber && f != FieldNotes {
		return Binder{}, fmt.Errorf("%w: %s", ErrNotBindable, f)
	}
	return Binder{field: f, editor: e}, nil
}

// Field returns the bound field
func (b Binder) Field() Field {
	return b.field
}

// Patch converts raw widget input into a patch without applying it.
// The number field trims the input; empty input clears the number.
func (b Binder) Patch(input string) (Patch, error) {
	switch b.field {
	case FieldName:
		return SetName(input), nil
	case FieldNotes:
		return SetNotes(input), nil
	case FieldNumber:
		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			return ClearNumber(), nil
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return Patch{}, fmt.Errorf("%w: %q", ErrInvalidNumber, input)
		}
		return SetNumber(n), nil
	default:
		return Patch{}, fmt.Errorf("%w: %s", ErrNotBindable, b.field)
	}
}

// Change converts the input and applies the resulting patch.
// Invalid input leaves the draft untouched.
func (b Binder) Change(input string) error {
	p, err := b.Patch(input)
	if err != nil {
		return err
	}
	b.editor.ApplyPatch(p)
	return nil
}
