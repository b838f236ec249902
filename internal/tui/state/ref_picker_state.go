package state

import (
	"strings"

	"github.com/thenoetrevino/dacite/internal/editor"
)

const maxFilterLength = 50

// RefPickerState manages cursor position and text filtering for the
// reference list. Load state and the selection itself live in editor.ReferencePicker.
type RefPickerState struct {
	// cursor is the index into the filtered candidates
	cursor int

	// filter is the text typed to narrow the candidates
	filter string
}

// NewRefPickerState creates a new RefPickerState with default values.
func NewRefPickerState() *RefPickerState {
	return &RefPickerState{}
}

// Cursor returns the current cursor position.
func (s *RefPickerState) Cursor() int {
	return s.cursor
}

// Filter returns the current filter text.
func (s *RefPickerState) Filter() string {
	return s.filter
}

// Filtered returns the candidates whose label contains the filter text, ignoring case.
// If no filter is set, returns all candidates.
func (s *RefPickerState) Filtered(candidates []editor.Candidate) []editor.Candidate {
	if s.filter == "" {
		return candidates
	}

	lowerFilter := strings.ToLower(s.filter)
	var filtered []editor.Candidate
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c.Value), lowerFilter) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// Current returns the candidate under the cursor, if any.
func (s *RefPickerState) Current(candidates []editor.Candidate) (editor.Candidate, bool) {
	filtered := s.Filtered(candidates)
	if s.cursor < 0 || s.cursor >= len(filtered) {
		return editor.Candidate{}, false
	}
	return filtered[s.cursor], true
}

// MoveCursorUp moves the cursor up one position if possible.
// Returns true if the cursor moved, false if already at top.
func (s *RefPickerState) MoveCursorUp() bool {
	if s.cursor > 0 {
		s.cursor--
		return true
	}
	return false
}

// MoveCursorDown moves the cursor down one position if possible.
// Returns true if the cursor moved, false if already at bottom.
//
// Parameters:
//   - maxIdx: the maximum valid cursor position (typically len(filtered)-1)
func (s *RefPickerState) MoveCursorDown(maxIdx int) bool {
	if s.cursor < maxIdx {
		s.cursor++
		return true
	}
	return false
}

// AppendFilter appends text to the filter and resets the cursor.
// Returns false if the filter is at max length.
func (s *RefPickerState) AppendFilter(text string) bool {
	if len(s.filter)+len(text) > maxFilterLength {
		return false
	}
	s.filter += text
	s.cursor = 0
	return true
}

// BackspaceFilter removes the last character from the filter text.
// Returns true if a character was removed, false if filter was already empty.
func (s *RefPickerState) BackspaceFilter() bool {
	if s.filter == "" {
		return false
	}
	r := []rune(s.filter)
	s.filter = string(r[:len(r)-1])
	s.cursor = 0
	return true
}

// Clear resets all state to default values.
func (s *RefPickerState) Clear() {
	s.cursor = 0
	s.filter = ""
}
