package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/soumyasagarnayak/appvault/internal/models"
	"github.com/soumyasagarnayak/appvault/internal/tui/theme"
)

// rowStyle applies selection highlighting to one list row
func rowStyle(selected bool) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))
	if selected {
		style = style.Background(lipgloss.Color(theme.SelectedBg)).Bold(true)
	}
	return style
}

func renderTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Highlight)).
		Render(" #" + strings.Join(tags, " #"))
}

// RenderLinkRow draws one row of the links list
func RenderLinkRow(link models.Link, selected bool) string {
	url := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Edit)).
		Render(link.URL)
	return rowStyle(selected).Render(link.Title) + "  " + url + renderTags(link.Tags)
}

// RenderDocumentRow draws one row of the documents list
func RenderDocumentRow(doc models.Document, selected bool) string {
	size := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Render(humanize.Bytes(uint64(doc.Size)))
	return rowStyle(selected).Render(doc.Name) + "  " + size + renderTags(doc.Tags)
}

// StrengthColor maps a strength tier to its theme color
func StrengthColor(strength models.Strength) string {
	switch strength {
	case models.StrengthStrong:
		return theme.Create
	case models.StrengthMedium:
		return theme.Edit
	default:
		return theme.Delete
	}
}

// RenderCredentialRow draws one row of the credentials list.
// The secret itself is never shown in the list.
func RenderCredentialRow(cred models.Credential, selected bool) string {
	badge := lipgloss.NewStyle().
		Foreground(lipgloss.Color(StrengthColor(cred.Strength))).
		Render(fmt.Sprintf("[%s]", cred.Strength))
	user := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Render(cred.Username)
	return rowStyle(selected).Render(cred.Title) + "  " + badge + "  " + user
}

// PriorityColor maps a priority to its theme color
func PriorityColor(priority models.Priority) string {
	switch priority {
	case models.PriorityHigh:
		return theme.Delete
	case models.PriorityMedium:
		return theme.Edit
	default:
		return theme.Create
	}
}

// RenderTaskRow draws one row of the tasks list with a completion checkbox,
// priority badge, and overdue marker.
func RenderTaskRow(task models.Task, selected bool, now time.Time) string {
	checkbox := "[ ]"
	if task.Completed {
		checkbox = "[x]"
	}

	badge := lipgloss.NewStyle().
		Foreground(lipgloss.Color(PriorityColor(task.Priority))).
		Render(fmt.Sprintf("(%s)", task.Priority))

	row := checkbox + " " + rowStyle(selected).Render(task.Title) + "  " + badge
	if task.DueDate != "" {
		due := task.DueDate
		if task.Overdue(now) {
			due = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.Delete)).
				Render(due + " (overdue)")
		} else {
			due = lipgloss.NewStyle().
				Foreground(lipgloss.Color(theme.Subtle)).
				Render(due)
		}
		row += "  " + due
	}
	return row
}
