package colors

// Kanagawa palette (https://github.com/rebelot/kanagawa.nvim)
var palette = struct {
	sumiInk4                            string
	fujiWhite, fujiGray                 string
	oniViolet, crystalBlue, springGreen string
	peachRed, samuraiRed, waveAqua2     string
	waveBlue1, winterBlue, winterRed    string
	dragonBlue, dragonBlack4            string
	dragonBlack6, dragonWhite           string
	dragonAsh, dragonViolet, dragonRed  string
	dragonGreen2, dragonBlue2           string
	dragonAqua                          string
}{
	sumiInk4:     "#54546D",
	fujiWhite:    "#DCD7BA",
	fujiGray:     "#727169",
	oniViolet:    "#957FB8",
	crystalBlue:  "#7E9CD8",
	springGreen:  "#98BB6C",
	peachRed:     "#FF5D62",
	samuraiRed:   "#E82424",
	waveAqua2:    "#7AA89F",
	waveBlue1:    "#223249",
	winterBlue:   "#252535",
	winterRed:    "#43242B",
	dragonBlue:   "#658594",
	dragonBlack4: "#282727",
	dragonBlack6: "#625E5A",
	dragonWhite:  "#C5C9C5",
	dragonAsh:    "#737C73",
	dragonViolet: "#8992A7",
	dragonRed:    "#C4746E",
	dragonGreen2: "#8A9A7B",
	dragonBlue2:  "#8BA4B0",
	dragonAqua:   "#8EA4A2",
}

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		Accent: palette.oniViolet,

		Create: palette.springGreen,
		Edit:   palette.crystalBlue,
		Delete: palette.peachRed,

		FieldBorder:   palette.sumiInk4,
		FocusedBorder: palette.waveAqua2,
		SelectedBg:    palette.waveBlue1,

		Title:  palette.crystalBlue,
		Subtle: palette.fujiGray,
		Normal: palette.fujiWhite,

		InfoFg:  palette.dragonBlue,
		InfoBg:  palette.winterBlue,
		ErrorFg: palette.samuraiRed,
		ErrorBg: palette.winterRed,
	}
}

// Dragon returns the Kanagawa Dragon color scheme (dark theme with warm earth tones)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset: "dragon",

		Accent: palette.dragonViolet,

		Create: palette.dragonGreen2,
		Edit:   palette.dragonBlue2,
		Delete: palette.dragonRed,

		FieldBorder:   palette.dragonBlack6,
		FocusedBorder: palette.dragonAqua,
		SelectedBg:    palette.dragonBlack4,

		Title:  palette.dragonBlue2,
		Subtle: palette.dragonAsh,
		Normal: palette.dragonWhite,

		InfoFg:  palette.dragonBlue,
		InfoBg:  palette.winterBlue,
		ErrorFg: palette.samuraiRed,
		ErrorBg: palette.winterRed,
	}
}
