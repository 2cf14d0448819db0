package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/soumyasagarnayak/appvault/internal/models"
	"github.com/soumyasagarnayak/appvault/internal/services/calendar"
	"github.com/soumyasagarnayak/appvault/internal/tui/theme"
)

// CalendarProps carries everything needed to draw one month page
type CalendarProps struct {
	Month    time.Time
	Days     map[string]models.DayActivity
	Selected time.Time
	Today    time.Time
	Width    int
}

const cellWidth = 5

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// tierColor maps an activity tier to its theme color. Tier "none" renders
// with no background at all.
func tierColor(tier calendar.Tier) (string, bool) {
	switch tier {
	case calendar.TierLow:
		return theme.TierLow, true
	case calendar.TierMedium:
		return theme.TierMedium, true
	case calendar.TierHigh:
		return theme.TierHigh, true
	default:
		return "", false
	}
}

// RenderCalendar draws the month grid with each day shaded by activity tier.
// Leading blank cells align the 1st with its weekday column, Sunday-first.
func RenderCalendar(props CalendarProps) string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title)).
		Render(props.Month.Format("January 2006"))
	b.WriteString(title)
	b.WriteString("\n\n")

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Width(cellWidth).
		Align(lipgloss.Center)
	headers := make([]string, 0, len(weekdayNames))
	for _, name := range weekdayNames {
		headers = append(headers, headerStyle.Render(name))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, headers...))
	b.WriteString("\n")

	cells := calendar.MonthGrid(props.Month)
	row := make([]string, 0, 7)
	for i, cell := range cells {
		row = append(row, renderDayCell(cell, props))
		if len(row) == 7 || i == len(cells)-1 {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
			b.WriteString("\n")
			row = row[:0]
		}
	}

	return b.String()
}

func renderDayCell(cell time.Time, props CalendarProps) string {
	style := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)
	if cell.IsZero() {
		return style.Render("")
	}

	day := calendar.DayFor(props.Days, cell)
	if color, ok := tierColor(calendar.TierFor(day.TotalActivity)); ok {
		style = style.Background(lipgloss.Color(color))
	}
	if sameDay(cell, props.Today) {
		style = style.Bold(true).Foreground(lipgloss.Color(theme.Highlight))
	}
	if sameDay(cell, props.Selected) {
		style = style.Reverse(true)
	}
	return style.Render(fmt.Sprintf("%d", cell.Day()))
}

func sameDay(a, b time.Time) bool {
	return !a.IsZero() && !b.IsZero() &&
		a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// RenderDayDetail answers "what happened on day D" for the selected cell
func RenderDayDetail(days map[string]models.DayActivity, selected time.Time) string {
	if selected.IsZero() {
		return ""
	}
	day := calendar.DayFor(days, selected)

	header := selected.Format("Monday, January 2")
	if day.TotalActivity == 0 {
		return header + ": " + lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Render("No activity")
	}

	parts := []string{}
	if day.TasksCompleted > 0 {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Create)).
			Render(fmt.Sprintf("%d %s completed", day.TasksCompleted, plural("task", day.TasksCompleted))))
	}
	if day.ItemsSaved > 0 {
		parts = append(parts, lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Edit)).
			Render(fmt.Sprintf("%d %s saved", day.ItemsSaved, plural("item", day.ItemsSaved))))
	}
	return header + ": " + strings.Join(parts, ", ")
}

// RenderLegend draws the activity tier legend under the grid
func RenderLegend() string {
	subtle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	swatch := func(color string) string {
		return lipgloss.NewStyle().Background(lipgloss.Color(color)).Render("  ")
	}
	return strings.Join([]string{
		subtle.Render("none") + " " + lipgloss.NewStyle().Render("  "),
		subtle.Render("low") + " " + swatch(theme.TierLow),
		subtle.Render("medium") + " " + swatch(theme.TierMedium),
		subtle.Render("high") + " " + swatch(theme.TierHigh),
	}, "  ")
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
