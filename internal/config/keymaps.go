package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Paging
	NextPage  string `yaml:"next_page"`
	PrevPage  string `yaml:"prev_page"`
	FirstPage string `yaml:"first_page"`
	LastPage  string `yaml:"last_page"`

	// Other
	CancelDrag string `yaml:"cancel_drag"`
	ShowHelp   string `yaml:"show_help"`
	Quit       string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Paging
		NextPage:  "l",
		PrevPage:  "h",
		FirstPage: "g",
		LastPage:  "G",

		// Other
		CancelDrag: "esc",
		ShowHelp:   "?",
		Quit:       "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.NextPage == "" {
		k.NextPage = defaults.NextPage
	}
	if k.PrevPage == "" {
		k.PrevPage = defaults.PrevPage
	}
	if k.FirstPage == "" {
		k.FirstPage = defaults.FirstPage
	}
	if k.LastPage == "" {
		k.LastPage = defaults.LastPage
	}
	if k.CancelDrag == "" {
		k.CancelDrag = defaults.CancelDrag
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
