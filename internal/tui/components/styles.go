// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dacite/internal/config/colors"
	"github.com/thenoetrevino/dacite/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// TitleStyle defines the appearance of the editor and list headers
	TitleStyle lipgloss.Style

	// LabelStyle defines blurred field titles
	LabelStyle lipgloss.Style

	// FocusedLabelStyle defines the title of the focused field
	FocusedLabelStyle lipgloss.Style

	// FieldStyle wraps a blurred input
	FieldStyle lipgloss.Style

	// FocusedFieldStyle wraps the focused input
	FocusedFieldStyle lipgloss.Style

	// CreateBoxStyle defines the editor frame for a new column (green border)
	CreateBoxStyle lipgloss.Style

	// EditBoxStyle defines the editor frame for an existing column (blue border)
	EditBoxStyle lipgloss.Style

	// NewRefBoxStyle frames the inline new-reference form
	NewRefBoxStyle lipgloss.Style

	// SelectedRowStyle highlights the row under the cursor
	SelectedRowStyle lipgloss.Style

	// SubtleStyle renders hints and placeholders
	SubtleStyle lipgloss.Style

	// FieldErrorStyle renders inline validation errors
	FieldErrorStyle lipgloss.Style

	// DirtyStyle renders the unsaved-changes marker
	DirtyStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(scheme colors.ColorScheme) {
	theme.Init(scheme)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Title))

	LabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	FocusedLabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(scheme.Accent))

	FieldStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.FieldBorder)).
		Padding(0, 1)

	FocusedFieldStyle = FieldStyle.
		BorderForeground(lipgloss.Color(scheme.FocusedBorder))

	CreateBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Create)).
		Padding(1, 2)

	EditBoxStyle = CreateBoxStyle.
		BorderForeground(lipgloss.Color(scheme.Edit))

	NewRefBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(scheme.Create)).
		Padding(0, 1)

	SelectedRowStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(scheme.SelectedBg)).
		Foreground(lipgloss.Color(scheme.Accent)).
		Bold(true)

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Subtle))

	FieldErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.ErrorFg))

	DirtyStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Delete)).
		Bold(true)
}
