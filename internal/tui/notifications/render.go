package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/dacite/internal/tui/state"
)

// RenderInline renders a compact single-line notification
func RenderInline(severity Severity, message string) string {
	style := severity.style()

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(style.icon + " " + message)
}

// RenderInlineFromState renders an inline notification from state, wrapping
// the message to fit width
func RenderInlineFromState(n state.Notification, width int) string {
	message := n.Message
	if width > 8 {
		message = wordwrap.String(message, width-6)
	}
	if n.Level == state.LevelError {
		return RenderInline(Error, message)
	}
	return RenderInline(Info, message)
}
