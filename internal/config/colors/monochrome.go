package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Create: "#FFFFFF",
		Edit:   "#FFFFFF",
		Delete: "#FFFFFF",

		FieldBorder:   "#585858",
		FocusedBorder: "#FFFFFF",
		SelectedBg:    "#3A3A3A",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		InfoFg:  "#FFFFFF",
		InfoBg:  "#1C1C1C",
		ErrorFg: "#FFFFFF",
		ErrorBg: "#585858",
	}
}
