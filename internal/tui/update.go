package tui

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/soumyasagarnayak/appvault/internal/services/calendar"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeSearch:
			return m.updateSearch(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateNormal(msg)
		}
	}

	if m.mode == modeForm && m.form != nil {
		return m.updateForm(msg)
	}
	if m.mode == modeSearch {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateForm feeds messages to the active huh form and reacts to its
// terminal states
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.mode = modeNormal
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.submitForm()
		return m, nil
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filter = m.searchInput.Value()
		m.searchInput.Blur()
		m.mode = modeNormal
		m.cursor = 0
		return m, nil
	case "esc":
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.filter = ""
		m.mode = modeNormal
		m.cursor = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.deleteSelected()
		m.mode = modeNormal
	case "n", "N", "esc":
		m.mode = modeNormal
		m.status = ""
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case m.keys.Quit, "ctrl+c":
		return m, tea.Quit

	case m.keys.ShowHelp:
		m.showHelp = !m.showHelp
		return m, nil

	case m.keys.NextView:
		m.view = (m.view + 1) % viewCount
		m.cursor = 0
		m.status = ""
		return m, nil

	case m.keys.PrevView:
		m.view = (m.view + viewCount - 1) % viewCount
		m.cursor = 0
		m.status = ""
		return m, nil

	case m.keys.Profile:
		m.openProfileForm()
		return m, nil

	case m.keys.Search:
		if m.view == ViewDashboard || m.view == ViewCalendar {
			return m, nil
		}
		m.mode = modeSearch
		m.searchInput.SetValue(m.filter)
		return m, m.searchInput.Focus()

	case "esc":
		if m.filter != "" {
			m.filter = ""
			m.searchInput.SetValue("")
			m.cursor = 0
		}
		m.status = ""
		return m, nil
	}

	if m.view == ViewCalendar {
		return m.updateCalendar(key)
	}
	return m.updateList(key)
}

// updateList handles keys on the four record list views. The dashboard
// only responds to the global keys above.
func (m Model) updateList(key string) (tea.Model, tea.Cmd) {
	switch key {
	case m.keys.NextItem, "down":
		if m.cursor < m.listLen()-1 {
			m.cursor++
		}

	case m.keys.PrevItem, "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case m.keys.Add:
		m.openAddForm()

	case m.keys.Edit:
		m.openEditForm()

	case m.keys.Delete:
		if m.listLen() > 0 {
			m.status = "Delete selected record? (y/n)"
			m.mode = modeConfirmDelete
		}

	case m.keys.Toggle:
		if m.view == ViewTasks {
			m.toggleSelectedTask()
		}

	case m.keys.Generate:
		if m.view == ViewCredentials {
			m.openGeneratorForm()
		}
	}
	return m, nil
}

// updateCalendar handles month and day navigation. Month changes recompute
// the activity window around the new reference month.
func (m Model) updateCalendar(key string) (tea.Model, tea.Cmd) {
	switch key {
	case m.keys.PrevMonth:
		m.refMonth = calendar.PrevMonth(m.refMonth)
		m.selectedDay = m.refMonth
		m.recomputeActivity()

	case m.keys.NextMonth:
		m.refMonth = calendar.NextMonth(m.refMonth)
		m.selectedDay = m.refMonth
		m.recomputeActivity()

	case m.keys.Today:
		now := time.Now()
		m.refMonth = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		m.selectedDay = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		m.recomputeActivity()

	case "left":
		m.moveSelectedDay(-1)
	case "right":
		m.moveSelectedDay(1)
	case "up":
		m.moveSelectedDay(-7)
	case "down":
		m.moveSelectedDay(7)
	}
	return m, nil
}

// moveSelectedDay shifts the selected day, following it across month
// boundaries so the grid always contains the selection.
func (m *Model) moveSelectedDay(days int) {
	m.selectedDay = m.selectedDay.AddDate(0, 0, days)
	if m.selectedDay.Year() != m.refMonth.Year() || m.selectedDay.Month() != m.refMonth.Month() {
		m.refMonth = time.Date(m.selectedDay.Year(), m.selectedDay.Month(), 1, 0, 0, 0, 0, m.selectedDay.Location())
		m.recomputeActivity()
	}
}

func (m *Model) toggleSelectedTask() {
	tasks := m.visibleTasks()
	if m.cursor >= len(tasks) {
		return
	}
	if _, err := m.tasks.Toggle(m.ctx, tasks[m.cursor].ID); err != nil {
		slog.Error("failed to toggle task", "error", err)
		m.status = fmt.Sprintf("Error: %v", err)
		return
	}
	m.status = ""
	m.reloadAll()
}

func (m *Model) deleteSelected() {
	var err error
	switch m.view {
	case ViewLinks:
		links := m.visibleLinks()
		if m.cursor >= len(links) {
			return
		}
		err = m.links.Delete(m.ctx, links[m.cursor].ID)
	case ViewDocuments:
		docs := m.visibleDocuments()
		if m.cursor >= len(docs) {
			return
		}
		err = m.documents.Delete(m.ctx, docs[m.cursor].ID)
	case ViewCredentials:
		creds := m.visibleCredentials()
		if m.cursor >= len(creds) {
			return
		}
		err = m.credentials.Delete(m.ctx, creds[m.cursor].ID)
	case ViewTasks:
		tasks := m.visibleTasks()
		if m.cursor >= len(tasks) {
			return
		}
		err = m.tasks.Delete(m.ctx, tasks[m.cursor].ID)
	default:
		return
	}

	if err != nil {
		slog.Error("failed to delete record", "error", err)
		m.status = fmt.Sprintf("Error: %v", err)
		return
	}
	m.status = ""
	m.reloadAll()
}
