package config

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // Green - tasks completed, create dialogs
	Edit   string `yaml:"edit"`   // Blue - items saved, edit dialogs
	Delete string `yaml:"delete"` // Red - delete confirmations, overdue

	// Calendar activity tiers
	TierLow    string `yaml:"tier_low"`
	TierMedium string `yaml:"tier_medium"`
	TierHigh   string `yaml:"tier_high"`

	// UI element colors
	CardBorder     string `yaml:"card_border"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`
}

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Preset: "default",

		Accent: "#874BFD",

		Create: "#5FD75F",
		Edit:   "#5F87D7",
		Delete: "#FF5F5F",

		TierLow:    "#5F5F87",
		TierMedium: "#875FD7",
		TierHigh:   "#AF87FF",

		CardBorder:     "#585858",
		SelectedBorder: "#D75FD7",
		SelectedBg:     "#3A3A3A",

		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",
	}
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Create: "#D0D0D0",
		Edit:   "#A8A8A8",
		Delete: "#FFFFFF",

		TierLow:    "#444444",
		TierMedium: "#888888",
		TierHigh:   "#CCCCCC",

		CardBorder:     "#585858",
		SelectedBorder: "#FFFFFF",
		SelectedBg:     "#303030",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",
	}
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) ColorScheme {
	switch name {
	case "monochrome":
		return MonochromeColorScheme()
	default:
		return DefaultColorScheme()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	if c.Accent == "" {
		c.Accent = preset.Accent
	}
	if c.Create == "" {
		c.Create = preset.Create
	}
	if c.Edit == "" {
		c.Edit = preset.Edit
	}
	if c.Delete == "" {
		c.Delete = preset.Delete
	}
	if c.TierLow == "" {
		c.TierLow = preset.TierLow
	}
	if c.TierMedium == "" {
		c.TierMedium = preset.TierMedium
	}
	if c.TierHigh == "" {
		c.TierHigh = preset.TierHigh
	}
	if c.CardBorder == "" {
		c.CardBorder = preset.CardBorder
	}
	if c.SelectedBorder == "" {
		c.SelectedBorder = preset.SelectedBorder
	}
	if c.SelectedBg == "" {
		c.SelectedBg = preset.SelectedBg
	}
	if c.Title == "" {
		c.Title = preset.Title
	}
	if c.Subtle == "" {
		c.Subtle = preset.Subtle
	}
	if c.Normal == "" {
		c.Normal = preset.Normal
	}
}

// MergeFrom overrides this scheme with any non-empty values from other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	if other.Accent != "" {
		c.Accent = other.Accent
	}
	if other.Create != "" {
		c.Create = other.Create
	}
	if other.Edit != "" {
		c.Edit = other.Edit
	}
	if other.Delete != "" {
		c.Delete = other.Delete
	}
	if other.TierLow != "" {
		c.TierLow = other.TierLow
	}
	if other.TierMedium != "" {
		c.TierMedium = other.TierMedium
	}
	if other.TierHigh != "" {
		c.TierHigh = other.TierHigh
	}
	if other.CardBorder != "" {
		c.CardBorder = other.CardBorder
	}
	if other.SelectedBorder != "" {
		c.SelectedBorder = other.SelectedBorder
	}
	if other.SelectedBg != "" {
		c.SelectedBg = other.SelectedBg
	}
	if other.Title != "" {
		c.Title = other.Title
	}
	if other.Subtle != "" {
		c.Subtle = other.Subtle
	}
	if other.Normal != "" {
		c.Normal = other.Normal
	}
}
