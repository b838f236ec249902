package models

import "time"

// Column represents a stratigraphic column.
// Number and Notes are optional; RefID is nil when no reference is attached.
type Column struct {
	ID        int
	GroupID   int
	Name      string
	Number    *int
	Notes     string
	RefID     *int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ColumnDetail is a column joined with its group and reference for display
type ColumnDetail struct {
	Column
	GroupName string
	Ref       *Reference
}

// GetID returns the column ID (used by the CLI quiet output mode)
func (c *Column) GetID() int {
	return c.ID
}
