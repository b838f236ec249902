package editor

import "github.com/thenoetrevino/dacite/internal/models"

// Field identifies an editable field of a column draft
type Field int

const (
	FieldName Field = iota
	FieldNumber
	FieldNotes
	FieldReference

	fieldCount
)

// Fields lists every editable field in display order
func Fields() []Field {
	return []Field{FieldName, FieldNumber, FieldNotes, FieldReference}
}

// String returns the record key of the field
func (f Field) String() string {
	switch f {
	case FieldName:
		return "col_name"
	case FieldNumber:
		return "col_number"
	case FieldNotes:
		return "notes"
	case FieldReference:
		return "ref"
	default:
		return "unknown"
	}
}

// Title returns the human label shown next to the field
func (f Field) Title() string {
	switch f {
	case FieldName:
		return "Column Name"
	case FieldNumber:
		return "Column Number"
	case FieldNotes:
		return "Notes"
	case FieldReference:
		return "Ref"
	default:
		return ""
	}
}

// Patch replaces the value of a single draft field.
// Build patches with the Set*/Clear* constructors; the zero Patch sets an empty name.
type Patch struct {
	field  Field
	text   string
	number *int
	ref    *models.Reference
}

// SetName patches the column name
func SetName(name string) Patch {
	return Patch{field: FieldName, text: name}
}

// SetNumber patches the column number
func SetNumber(n int) Patch {
	return Patch{field: FieldNumber, number: &n}
}

// ClearNumber removes the column number
func ClearNumber() Patch {
	return Patch{field: FieldNumber}
}

// SetNotes patches the notes
func SetNotes(notes string) Patch {
	return Patch{field: FieldNotes, text: notes}
}

// SetReference attaches a reference, either an existing one or a local draft
func SetReference(ref models.Reference) Patch {
	return Patch{field: FieldReference, ref: &ref}
}

// ClearReference detaches the reference
func ClearReference() Patch {
	return Patch{field: FieldReference}
}

// Field returns the field the patch targets
func (p Patch) Field() Field {
	return p.field
}
