package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/soumyasagarnayak/appvault/internal/config"
	"github.com/soumyasagarnayak/appvault/internal/database"
	"github.com/soumyasagarnayak/appvault/internal/models"
	"github.com/soumyasagarnayak/appvault/internal/services/activity"
	"github.com/soumyasagarnayak/appvault/internal/services/calendar"
	"github.com/soumyasagarnayak/appvault/internal/services/credential"
	"github.com/soumyasagarnayak/appvault/internal/services/dashboard"
	"github.com/soumyasagarnayak/appvault/internal/services/document"
	"github.com/soumyasagarnayak/appvault/internal/services/link"
	"github.com/soumyasagarnayak/appvault/internal/services/profile"
	"github.com/soumyasagarnayak/appvault/internal/services/task"
)

// View identifies the active tab
type View int

const (
	ViewDashboard View = iota
	ViewLinks
	ViewDocuments
	ViewCredentials
	ViewTasks
	ViewCalendar

	viewCount
)

// Title returns the tab label for the view
func (v View) Title() string {
	switch v {
	case ViewDashboard:
		return "Dashboard"
	case ViewLinks:
		return "Links"
	case ViewDocuments:
		return "PDFs"
	case ViewCredentials:
		return "Passwords"
	case ViewTasks:
		return "Tasks"
	case ViewCalendar:
		return "Calendar"
	default:
		return ""
	}
}

// mode is the input mode the model is in
type mode int

const (
	modeNormal mode = iota
	modeForm
	modeSearch
	modeConfirmDelete
)

// formKind identifies which record type the open form edits
type formKind int

const (
	formNone formKind = iota
	formLink
	formDocument
	formCredential
	formTask
	formProfile
)

// formValues backs the huh form fields. The form mutates these in place;
// submitForm reads them back out.
type formValues struct {
	title       string
	url         string
	description string
	tags        string

	website  string
	username string
	secret   string
	notes    string

	priority models.Priority
	dueDate  string

	path string
	name string

	profName  string
	profEmail string
	profBio   string
}

// Model represents the application state for the TUI
type Model struct {
	ctx  context.Context
	repo database.DataStore
	keys config.KeyMappings

	links       link.Service
	documents   document.Service
	credentials credential.Service
	tasks       task.Service
	dash        dashboard.Service
	profiles    profile.Service

	view   View
	mode   mode
	cursor int
	width  int
	height int

	searchInput textinput.Model
	filter      string

	form      *huh.Form
	formKind  formKind
	editingID string
	vals      formValues

	// Calendar state. refMonth is pinned to the 1st of the displayed month;
	// activityMap is the aggregation over its 5-month window.
	refMonth    time.Time
	selectedDay time.Time
	activityMap map[string]models.DayActivity
	monthStats  calendar.MonthlyStats

	linkList []models.Link
	docList  []models.Document
	credList []models.Credential
	taskList []models.Task

	stats dashboard.Stats
	quote string
	owner models.Profile

	showHelp bool
	status   string
}

// InitialModel creates and initializes the TUI model with data from the store
func InitialModel(ctx context.Context, repo database.DataStore, cfg *config.Config) Model {
	searchInput := textinput.New()
	searchInput.Placeholder = "Search..."
	searchInput.CharLimit = 120

	now := time.Now()
	m := Model{
		ctx:  ctx,
		repo: repo,
		keys: cfg.KeyMappings,

		links:       link.NewService(repo),
		documents:   document.NewService(repo),
		credentials: credential.NewService(repo),
		tasks:       task.NewService(repo),
		dash:        dashboard.NewService(repo),
		profiles:    profile.NewService(repo),

		searchInput: searchInput,
		refMonth:    time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
		selectedDay: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
	}
	m.reloadAll()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// reloadAll re-reads every store and recomputes derived state. Called after
// each mutation so the whole UI reflects one consistent read.
func (m *Model) reloadAll() {
	var err error
	if m.linkList, err = m.links.List(m.ctx); err != nil {
		slog.Error("failed to load links", "error", err)
		m.linkList = nil
	}
	if m.docList, err = m.documents.List(m.ctx); err != nil {
		slog.Error("failed to load documents", "error", err)
		m.docList = nil
	}
	if m.credList, err = m.credentials.List(m.ctx); err != nil {
		slog.Error("failed to load credentials", "error", err)
		m.credList = nil
	}
	if m.taskList, err = m.tasks.List(m.ctx); err != nil {
		slog.Error("failed to load tasks", "error", err)
		m.taskList = nil
	}

	now := time.Now()
	if m.stats, err = m.dash.Stats(m.ctx, now); err != nil {
		slog.Error("failed to load dashboard stats", "error", err)
	}
	if m.quote, err = m.dash.QuoteOfDay(m.ctx, now); err != nil {
		slog.Error("failed to load quote of the day", "error", err)
	}
	if m.owner, err = m.profiles.Get(m.ctx); err != nil {
		slog.Error("failed to load profile", "error", err)
	}

	m.recomputeActivity()
	m.clampCursor()
}

// recomputeActivity rebuilds the per-day activity map for the displayed
// month's window and the monthly rollup from that same map.
func (m *Model) recomputeActivity() {
	snap := activity.Snapshot{
		Links:       m.linkList,
		Documents:   m.docList,
		Credentials: m.credList,
		Tasks:       m.taskList,
	}
	m.activityMap = activity.Aggregate(m.refMonth, snap)
	m.monthStats = calendar.Stats(m.activityMap, m.refMonth)
}

// listLen returns the number of visible rows in the active list view
func (m *Model) listLen() int {
	switch m.view {
	case ViewLinks:
		return len(m.visibleLinks())
	case ViewDocuments:
		return len(m.visibleDocuments())
	case ViewCredentials:
		return len(m.visibleCredentials())
	case ViewTasks:
		return len(m.visibleTasks())
	default:
		return 0
	}
}

func (m *Model) clampCursor() {
	if n := m.listLen(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
