package models

import "fmt"

// Reference is a bibliographic citation that columns can be attached to.
// A reference with ID 0 has been drafted locally and not yet persisted.
type Reference struct {
	ID      int
	PubYear int
	Author  string
	Ref     string // full citation text
	DOI     string
	URL     string
}

// Label formats the reference the way pickers display it: Author(Year)
func (r Reference) Label() string {
	return fmt.Sprintf("%s(%d)", r.Author, r.PubYear)
}

// IsDraft reports whether the reference has not been persisted yet
func (r Reference) IsDraft() bool {
	return r.ID == 0
}

// GetID returns the reference ID (used by the CLI quiet output mode)
func (r *Reference) GetID() int {
	return r.ID
}
