package models

// ColumnGroup is the parent grouping of columns (e.g., a basin or a project area).
// The column editor renders it but never edits it.
type ColumnGroup struct {
	ID   int
	Name string
}
