package editor

import (
	"strconv"

	"github.com/thenoetrevino/dacite/internal/models"
)

// Draft is the in-progress state of a column edit.
// Drafts are values: Apply returns a new Draft and never touches the receiver.
type Draft struct {
	ColumnID int // 0 for a column that does not exist yet
	GroupID  int
	Name     string
	Number   *int
	Notes    string
	Ref      *models.Reference
}

// Empty returns a blank draft for a new column in the given group
func Empty(groupID int) Draft {
	return Draft{GroupID: groupID}
}

// FromColumn seeds a draft from a stored column and its attached reference
func FromColumn(c *models.ColumnDetail) Draft {
	if c == nil {
		return Draft{}
	}
	d := Draft{
		ColumnID: c.ID,
		GroupID:  c.GroupID,
		Name:     c.Name,
		Notes:    c.Notes,
	}
	if c.Number != nil {
		n := *c.Number
		d.Number = &n
	}
	if c.Ref != nil {
		ref := *c.Ref
		d.Ref = &ref
	}
	return d
}

// Apply returns a copy of the draft with the patch applied
func (d Draft) Apply(p Patch) Draft {
	next := d.clone()
	switch p.field {
	case FieldName:
		next.Name = p.text
	case FieldNumber:
		next.Number = nil
		if p.number != nil {
			n := *p.number
			next.Number = &n
		}
	case FieldNotes:
		next.Notes = p.text
	case FieldReference:
		next.Ref = nil
		if p.ref != nil {
			ref := *p.ref
			next.Ref = &ref
		}
	}
	return next
}

// IsNew reports whether the draft describes a column that has not been stored yet
func (d Draft) IsNew() bool {
	return d.ColumnID == 0
}

// RefLabel formats the attached reference as Author(Year), or "" when none is attached
func (d Draft) RefLabel() string {
	if d.Ref == nil {
		return ""
	}
	return d.Ref.Label()
}

// Column converts the draft to a column model; RefID is taken from the attached reference
func (d Draft) Column() models.Column {
	c := models.Column{
		ID:      d.ColumnID,
		GroupID: d.GroupID,
		Name:    d.Name,
		Notes:   d.Notes,
	}
	if d.Number != nil {
		n := *d.Number
		c.Number = &n
	}
	if d.Ref != nil && !d.Ref.IsDraft() {
		id := d.Ref.ID
		c.RefID = &id
	}
	return c
}

func (d Draft) clone() Draft {
	out := d
	if d.Number != nil {
		n := *d.Number
		out.Number = &n
	}
	if d.Ref != nil {
		ref := *d.Ref
		out.Ref = &ref
	}
	return out
}

// FormatNumber renders an optional column number the way the number input shows it
func FormatNumber(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
