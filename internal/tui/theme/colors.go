package theme

import "github.com/soumyasagarnayak/appvault/internal/config"

// Theme colors, initialized by Init from the loaded color scheme
var (
	Highlight      string
	Subtle         string
	Normal         string
	Create         string
	Edit           string
	Delete         string
	TierLow        string
	TierMedium     string
	TierHigh       string
	CardBorder     string
	SelectedBorder string
	SelectedBg     string
	Title          string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Subtle = colors.Subtle
	Normal = colors.Normal
	Create = colors.Create
	Edit = colors.Edit
	Delete = colors.Delete
	TierLow = colors.TierLow
	TierMedium = colors.TierMedium
	TierHigh = colors.TierHigh
	CardBorder = colors.CardBorder
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	Title = colors.Title
}
