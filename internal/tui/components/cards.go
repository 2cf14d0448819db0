package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/soumyasagarnayak/appvault/internal/tui/theme"
)

// Card is one labeled number on the dashboard or above the calendar
type Card struct {
	Label string
	Value int
	Color string
}

// RenderCards draws a row of bordered stat cards
func RenderCards(cards []Card) string {
	rendered := make([]string, 0, len(cards))
	for _, card := range cards {
		color := card.Color
		if color == "" {
			color = theme.Highlight
		}
		value := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(color)).
			Render(fmt.Sprintf("%d", card.Value))
		label := lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Render(card.Label)
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.CardBorder)).
			Padding(0, 2).
			Render(label + "\n" + value)
		rendered = append(rendered, box)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
