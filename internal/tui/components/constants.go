package components

const (
	// MaxVisibleRefs is the number of reference candidates shown at once
	MaxVisibleRefs = 6

	// FieldWidth is the default width of editor inputs before a resize arrives
	FieldWidth = 60

	NotesHeight = 5
)
