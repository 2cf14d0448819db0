package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/soumyasagarnayak/appvault/internal/tui/theme"
)

// FormBoxStyle wraps huh forms in a centered dialog
func FormBoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.SelectedBorder)).
		Padding(1, 2)
}

// TitleStyle renders view headings
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))
}

// SubtleStyle renders muted helper text
func SubtleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))
}

// ErrorStyle renders inline error messages
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Delete))
}

// TabStyle renders one navigation tab
func TabStyle(active bool) lipgloss.Style {
	style := lipgloss.NewStyle().Padding(0, 1)
	if active {
		return style.
			Bold(true).
			Foreground(lipgloss.Color(theme.Highlight)).
			Underline(true)
	}
	return style.Foreground(lipgloss.Color(theme.Subtle))
}
