package theme

import "github.com/thenoetrevino/dacite/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight string
	Subtle    string
	Normal    string
	Create    string
	Edit      string
	InfoFg    string
	InfoBg    string
	ErrorFg   string
	ErrorBg   string
)

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Highlight = scheme.Accent
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	Create = scheme.Create
	Edit = scheme.Edit
	InfoFg = scheme.InfoFg
	InfoBg = scheme.InfoBg
	ErrorFg = scheme.ErrorFg
	ErrorBg = scheme.ErrorBg
}
