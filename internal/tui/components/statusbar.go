package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dacite/internal/tui/theme"
)

type StatusBarProps struct {
	Width int
	Left  string
	Help  string
}

// RenderStatusBar renders a status bar with the title on the left and key help on the right
func RenderStatusBar(props StatusBarProps) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	leftRendered := style.Render(props.Left)
	rightRendered := style.Render(props.Help)

	gapWidth := props.Width - lipgloss.Width(leftRendered) - lipgloss.Width(rightRendered)
	if gapWidth < 1 {
		gapWidth = 1
	}

	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
