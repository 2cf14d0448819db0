package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Records
	Add    string `yaml:"add"`
	Edit   string `yaml:"edit"`
	Delete string `yaml:"delete"`
	Toggle string `yaml:"toggle"`
	View   string `yaml:"view"`

	// Navigation
	NextView string `yaml:"next_view"`
	PrevView string `yaml:"prev_view"`
	PrevItem string `yaml:"prev_item"`
	NextItem string `yaml:"next_item"`

	// Calendar
	PrevMonth string `yaml:"prev_month"`
	NextMonth string `yaml:"next_month"`
	Today     string `yaml:"today"`

	// Other
	Search   string `yaml:"search"`
	Generate string `yaml:"generate"`
	Profile  string `yaml:"profile"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		Add:    "a",
		Edit:   "e",
		Delete: "d",
		Toggle: " ",
		View:   "enter",

		NextView: "tab",
		PrevView: "shift+tab",
		PrevItem: "k",
		NextItem: "j",

		PrevMonth: "h",
		NextMonth: "l",
		Today:     "t",

		Search:   "/",
		Generate: "g",
		Profile:  "p",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in any missing key bindings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.Add == "" {
		k.Add = defaults.Add
	}
	if k.Edit == "" {
		k.Edit = defaults.Edit
	}
	if k.Delete == "" {
		k.Delete = defaults.Delete
	}
	if k.Toggle == "" {
		k.Toggle = defaults.Toggle
	}
	if k.View == "" {
		k.View = defaults.View
	}
	if k.NextView == "" {
		k.NextView = defaults.NextView
	}
	if k.PrevView == "" {
		k.PrevView = defaults.PrevView
	}
	if k.PrevItem == "" {
		k.PrevItem = defaults.PrevItem
	}
	if k.NextItem == "" {
		k.NextItem = defaults.NextItem
	}
	if k.PrevMonth == "" {
		k.PrevMonth = defaults.PrevMonth
	}
	if k.NextMonth == "" {
		k.NextMonth = defaults.NextMonth
	}
	if k.Today == "" {
		k.Today = defaults.Today
	}
	if k.Search == "" {
		k.Search = defaults.Search
	}
	if k.Generate == "" {
		k.Generate = defaults.Generate
	}
	if k.Profile == "" {
		k.Profile = defaults.Profile
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
