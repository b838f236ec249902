package components

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/dacite/internal/tui/theme"
)

type NotesProps struct {
	Notes string
	Width int
}

// Cache Glamour renderers by width to avoid expensive re-creation
var (
	rendererCache sync.Map // map[int]*glamour.TermRenderer
)

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderNotes renders column notes as markdown, falling back to the raw text
func RenderNotes(props NotesProps) string {
	if strings.TrimSpace(props.Notes) != "" {
		renderer, err := getRenderer(props.Width)
		if err == nil {
			rendered, err := renderer.Render(props.Notes)
			if err == nil {
				return strings.TrimSpace(rendered)
			}
		}
		return props.Notes
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true).
		Render("No notes")
}
