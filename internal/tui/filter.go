package tui

import (
	"strings"

	"github.com/soumyasagarnayak/appvault/internal/models"
)

// matches reports whether any of the given fields contains the filter,
// case-insensitively. An empty filter matches everything.
func matches(filter string, fields ...string) bool {
	if filter == "" {
		return true
	}
	filter = strings.ToLower(filter)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), filter) {
			return true
		}
	}
	return false
}

func (m *Model) visibleLinks() []models.Link {
	if m.filter == "" {
		return m.linkList
	}
	out := make([]models.Link, 0, len(m.linkList))
	for _, l := range m.linkList {
		if matches(m.filter, l.Title, l.URL, l.Description, strings.Join(l.Tags, " ")) {
			out = append(out, l)
		}
	}
	return out
}

func (m *Model) visibleDocuments() []models.Document {
	if m.filter == "" {
		return m.docList
	}
	out := make([]models.Document, 0, len(m.docList))
	for _, d := range m.docList {
		if matches(m.filter, d.Name, d.OriginalName, d.Description, strings.Join(d.Tags, " ")) {
			out = append(out, d)
		}
	}
	return out
}

func (m *Model) visibleCredentials() []models.Credential {
	if m.filter == "" {
		return m.credList
	}
	out := make([]models.Credential, 0, len(m.credList))
	for _, c := range m.credList {
		// Never match on the secret itself
		if matches(m.filter, c.Title, c.Website, c.Username, c.Notes) {
			out = append(out, c)
		}
	}
	return out
}

func (m *Model) visibleTasks() []models.Task {
	if m.filter == "" {
		return m.taskList
	}
	out := make([]models.Task, 0, len(m.taskList))
	for _, t := range m.taskList {
		if matches(m.filter, t.Title, t.Description) {
			out = append(out, t)
		}
	}
	return out
}
