package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Editor
	Submit       string `yaml:"submit"`
	Cancel       string `yaml:"cancel"`
	NextField    string `yaml:"next_field"`
	PrevField    string `yaml:"prev_field"`
	ToggleNewRef string `yaml:"toggle_new_ref"`
	ClearRef     string `yaml:"clear_ref"`
	RetryLoad    string `yaml:"retry_load"`

	// Reference picker
	PrevRef   string `yaml:"prev_ref"`
	NextRef   string `yaml:"next_ref"`
	SelectRef string `yaml:"select_ref"`

	// Column list
	NewColumn  string `yaml:"new_column"`
	EditColumn string `yaml:"edit_column"`
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`

	// Other
	Quit string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		Submit:       "ctrl+s",
		Cancel:       "esc",
		NextField:    "tab",
		PrevField:    "shift+tab",
		ToggleNewRef: "ctrl+n",
		ClearRef:     "ctrl+x",
		RetryLoad:    "ctrl+r",

		PrevRef:   "up",
		NextRef:   "down",
		SelectRef: "enter",

		NewColumn:  "n",
		EditColumn: "enter",
		PrevColumn: "k",
		NextColumn: "j",

		Quit: "ctrl+c",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	fill(&k.Submit, defaults.Submit)
	fill(&k.Cancel, defaults.Cancel)
	fill(&k.NextField, defaults.NextField)
	fill(&k.PrevField, defaults.PrevField)
	fill(&k.ToggleNewRef, defaults.ToggleNewRef)
	fill(&k.ClearRef, defaults.ClearRef)
	fill(&k.RetryLoad, defaults.RetryLoad)
	fill(&k.PrevRef, defaults.PrevRef)
	fill(&k.NextRef, defaults.NextRef)
	fill(&k.SelectRef, defaults.SelectRef)
	fill(&k.NewColumn, defaults.NewColumn)
	fill(&k.EditColumn, defaults.EditColumn)
	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.Quit, defaults.Quit)
}
