package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset"`

	// Primary accent color (used for focus, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // new column / new reference
	Edit   string `yaml:"edit"`   // existing column
	Delete string `yaml:"delete"`

	// UI element colors
	FieldBorder   string `yaml:"field_border"`
	FocusedBorder string `yaml:"focused_border"`
	SelectedBg    string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg  string `yaml:"info_fg"`
	InfoBg  string `yaml:"info_bg"`
	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`
}

// Presets lists the preset names accepted in the config file
func Presets() []string {
	return []string{"default", "monochrome", "wave", "dragon"}
}

// GetPreset returns a preset color scheme by name, falling back to the default
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	case "dragon":
		return Dragon()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	preset.MergeFrom(*c)
	*c = *preset
}

// MergeFrom overrides every color that is set in other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&c.Preset, other.Preset)
	set(&c.Accent, other.Accent)
	set(&c.Create, other.Create)
	set(&c.Edit, other.Edit)
	set(&c.Delete, other.Delete)
	set(&c.FieldBorder, other.FieldBorder)
	set(&c.FocusedBorder, other.FocusedBorder)
	set(&c.SelectedBg, other.SelectedBg)
	set(&c.Title, other.Title)
	set(&c.Subtle, other.Subtle)
	set(&c.Normal, other.Normal)
	set(&c.InfoFg, other.InfoFg)
	set(&c.InfoBg, other.InfoBg)
	set(&c.ErrorFg, other.ErrorFg)
	set(&c.ErrorBg, other.ErrorBg)
}
