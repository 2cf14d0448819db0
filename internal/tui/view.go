package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/soumyasagarnayak/appvault/internal/tui/components"
	"github.com/soumyasagarnayak/appvault/internal/tui/theme"
)

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.mode == modeForm && m.form != nil {
		box := FormBoxStyle().Render(m.form.View())
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}

	var body string
	switch m.view {
	case ViewDashboard:
		body = m.viewDashboard()
	case ViewLinks:
		body = m.viewLinks()
	case ViewDocuments:
		body = m.viewDocuments()
	case ViewCredentials:
		body = m.viewCredentials()
	case ViewTasks:
		body = m.viewTasks()
	case ViewCalendar:
		body = m.viewCalendar()
	}

	sections := []string{m.renderTabs(), "", body}
	if m.mode == modeSearch {
		sections = append(sections, "", "Search: "+m.searchInput.View())
	} else if m.filter != "" {
		sections = append(sections, "", SubtleStyle().Render(fmt.Sprintf("Filter: %q (esc to clear)", m.filter)))
	}
	if m.showHelp {
		sections = append(sections, "", m.renderHelp())
	}
	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	bar := m.renderStatusBar()
	gap := m.height - lipgloss.Height(content) - lipgloss.Height(bar)
	if gap > 0 {
		content += strings.Repeat("\n", gap)
	}
	return content + "\n" + bar
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, int(viewCount))
	for v := ViewDashboard; v < viewCount; v++ {
		tabs = append(tabs, TabStyle(v == m.view).Render(v.Title()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

func (m Model) renderStatusBar() string {
	left := m.status
	if left == "" {
		left = fmt.Sprintf("%s add  %s edit  %s delete  %s search  %s help  %s quit",
			m.keys.Add, m.keys.Edit, m.keys.Delete, m.keys.Search, m.keys.ShowHelp, m.keys.Quit)
	}
	right := m.owner.Name
	if right == "" {
		right = "AppVault"
	}
	bar := components.RenderStatusBar(components.StatusBarProps{
		Width: m.width,
		Left:  left,
		Right: right,
	})
	if m.status != "" && strings.HasPrefix(m.status, "Error") {
		return ErrorStyle().Render(bar)
	}
	return bar
}

func (m Model) renderHelp() string {
	lines := []string{
		fmt.Sprintf("%s/%s  switch view", m.keys.NextView, m.keys.PrevView),
		fmt.Sprintf("%s/%s  move cursor", m.keys.PrevItem, m.keys.NextItem),
		fmt.Sprintf("%s  add    %s  edit    %s  delete", m.keys.Add, m.keys.Edit, m.keys.Delete),
		fmt.Sprintf("space  toggle task    %s  generate password", m.keys.Generate),
		fmt.Sprintf("%s/%s  change month    %s  today", m.keys.PrevMonth, m.keys.NextMonth, m.keys.Today),
		fmt.Sprintf("%s  search    %s  profile    %s  quit", m.keys.Search, m.keys.Profile, m.keys.Quit),
	}
	return SubtleStyle().Render(strings.Join(lines, "\n"))
}

func (m Model) viewDashboard() string {
	greeting := "Welcome back"
	if m.owner.Name != "" {
		greeting = "Welcome back, " + m.owner.Name
	}

	cards := components.RenderCards([]components.Card{
		{Label: "Links", Value: m.stats.Links, Color: theme.Highlight},
		{Label: "PDFs", Value: m.stats.Documents, Color: theme.Create},
		{Label: "Passwords", Value: m.stats.Credentials, Color: theme.Edit},
		{Label: "Tasks", Value: m.stats.Tasks, Color: theme.TierHigh},
	})

	progress := fmt.Sprintf("Completed today: %d    Streak: %d %s",
		m.stats.CompletedToday, m.stats.Streak, plural("day", m.stats.Streak))

	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle().Render(greeting),
		"",
		cards,
		"",
		progress,
		"",
		SubtleStyle().Render("\""+m.quote+"\""),
	)
}

func (m Model) viewLinks() string {
	links := m.visibleLinks()
	if len(links) == 0 {
		return m.emptyState("No links yet")
	}

	rows := make([]string, 0, len(links)+2)
	rows = append(rows, TitleStyle().Render(fmt.Sprintf("Links (%d)", len(links))), "")
	for i, l := range links {
		rows = append(rows, components.RenderLinkRow(l, i == m.cursor))
	}

	if m.cursor < len(links) && links[m.cursor].Description != "" {
		rows = append(rows, "", components.RenderDescription(components.DescriptionProps{
			Description: links[m.cursor].Description,
			Width:       m.width - 4,
		}))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewDocuments() string {
	docs := m.visibleDocuments()
	if len(docs) == 0 {
		return m.emptyState("No PDFs yet")
	}

	rows := make([]string, 0, len(docs)+2)
	rows = append(rows, TitleStyle().Render(fmt.Sprintf("PDFs (%d)", len(docs))), "")
	for i, d := range docs {
		rows = append(rows, components.RenderDocumentRow(d, i == m.cursor))
	}

	if m.cursor < len(docs) && docs[m.cursor].Description != "" {
		rows = append(rows, "", components.RenderDescription(components.DescriptionProps{
			Description: docs[m.cursor].Description,
			Width:       m.width - 4,
		}))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewCredentials() string {
	creds := m.visibleCredentials()
	if len(creds) == 0 {
		return m.emptyState("No passwords yet")
	}

	rows := make([]string, 0, len(creds)+2)
	rows = append(rows, TitleStyle().Render(fmt.Sprintf("Passwords (%d)", len(creds))), "")
	for i, c := range creds {
		rows = append(rows, components.RenderCredentialRow(c, i == m.cursor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewTasks() string {
	tasks := m.visibleTasks()
	if len(tasks) == 0 {
		return m.emptyState("No tasks yet")
	}

	now := time.Now()
	rows := make([]string, 0, len(tasks)+2)
	rows = append(rows, TitleStyle().Render(fmt.Sprintf("Tasks (%d)", len(tasks))), "")
	for i, t := range tasks {
		rows = append(rows, components.RenderTaskRow(t, i == m.cursor, now))
	}

	if m.cursor < len(tasks) && tasks[m.cursor].Description != "" {
		rows = append(rows, "", components.RenderDescription(components.DescriptionProps{
			Description: tasks[m.cursor].Description,
			Width:       m.width - 4,
		}))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewCalendar() string {
	now := time.Now()
	grid := components.RenderCalendar(components.CalendarProps{
		Month:    m.refMonth,
		Days:     m.activityMap,
		Selected: m.selectedDay,
		Today:    now,
		Width:    m.width,
	})

	stats := components.RenderCards([]components.Card{
		{Label: "Tasks Done", Value: m.monthStats.TasksCompleted, Color: theme.Create},
		{Label: "Items Saved", Value: m.monthStats.ItemsSaved, Color: theme.Highlight},
		{Label: "Active Days", Value: m.monthStats.ActiveDays, Color: theme.TierHigh},
	})

	return lipgloss.JoinVertical(lipgloss.Left,
		grid,
		"",
		components.RenderLegend(),
		"",
		components.RenderDayDetail(m.activityMap, m.selectedDay),
		"",
		stats,
	)
}

func (m Model) emptyState(message string) string {
	hint := fmt.Sprintf("Press %q to add one", m.keys.Add)
	if m.filter != "" {
		message = fmt.Sprintf("Nothing matches %q", m.filter)
		hint = "Press esc to clear the filter"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle().Render(m.view.Title()),
		"",
		SubtleStyle().Render(message),
		SubtleStyle().Render(hint),
	)
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
