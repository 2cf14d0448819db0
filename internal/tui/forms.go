package tui

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/soumyasagarnayak/appvault/internal/models"
	"github.com/soumyasagarnayak/appvault/internal/services/credential"
	"github.com/soumyasagarnayak/appvault/internal/services/document"
	"github.com/soumyasagarnayak/appvault/internal/services/link"
	"github.com/soumyasagarnayak/appvault/internal/services/profile"
	"github.com/soumyasagarnayak/appvault/internal/services/task"
	"github.com/soumyasagarnayak/appvault/internal/tui/huhforms"
)

// openAddForm opens a blank create form for the active view
func (m *Model) openAddForm() {
	m.vals = formValues{priority: models.PriorityMedium}
	m.editingID = ""

	switch m.view {
	case ViewLinks:
		m.formKind = formLink
		m.form = huhforms.LinkForm(&m.vals.title, &m.vals.url, &m.vals.description, &m.vals.tags)
	case ViewDocuments:
		m.formKind = formDocument
		m.form = huhforms.DocumentForm(&m.vals.path, &m.vals.name, &m.vals.description, &m.vals.tags, false)
	case ViewCredentials:
		m.formKind = formCredential
		m.form = huhforms.CredentialForm(&m.vals.title, &m.vals.website, &m.vals.username, &m.vals.secret, &m.vals.notes)
	case ViewTasks:
		m.formKind = formTask
		m.form = huhforms.TaskForm(&m.vals.title, &m.vals.description, &m.vals.priority, &m.vals.dueDate)
	default:
		return
	}
	m.mode = modeForm
}

// openGeneratorForm opens the credential form pre-filled with a freshly
// generated secret
func (m *Model) openGeneratorForm() {
	m.vals = formValues{secret: credential.Generate(credential.DefaultLength)}
	m.editingID = ""
	m.formKind = formCredential
	m.form = huhforms.CredentialForm(&m.vals.title, &m.vals.website, &m.vals.username, &m.vals.secret, &m.vals.notes)
	m.mode = modeForm
}

// openEditForm opens a form pre-filled from the record under the cursor
func (m *Model) openEditForm() {
	switch m.view {
	case ViewLinks:
		links := m.visibleLinks()
		if m.cursor >= len(links) {
			return
		}
		l := links[m.cursor]
		m.vals = formValues{title: l.Title, url: l.URL, description: l.Description, tags: strings.Join(l.Tags, ", ")}
		m.editingID = l.ID
		m.formKind = formLink
		m.form = huhforms.LinkForm(&m.vals.title, &m.vals.url, &m.vals.description, &m.vals.tags)
	case ViewDocuments:
		docs := m.visibleDocuments()
		if m.cursor >= len(docs) {
			return
		}
		d := docs[m.cursor]
		m.vals = formValues{name: d.Name, description: d.Description, tags: strings.Join(d.Tags, ", ")}
		m.editingID = d.ID
		m.formKind = formDocument
		m.form = huhforms.DocumentForm(&m.vals.path, &m.vals.name, &m.vals.description, &m.vals.tags, true)
	case ViewCredentials:
		creds := m.visibleCredentials()
		if m.cursor >= len(creds) {
			return
		}
		c := creds[m.cursor]
		m.vals = formValues{title: c.Title, website: c.Website, username: c.Username, secret: c.Secret, notes: c.Notes}
		m.editingID = c.ID
		m.formKind = formCredential
		m.form = huhforms.CredentialForm(&m.vals.title, &m.vals.website, &m.vals.username, &m.vals.secret, &m.vals.notes)
	case ViewTasks:
		tasks := m.visibleTasks()
		if m.cursor >= len(tasks) {
			return
		}
		t := tasks[m.cursor]
		m.vals = formValues{title: t.Title, description: t.Description, priority: t.Priority, dueDate: t.DueDate}
		m.editingID = t.ID
		m.formKind = formTask
		m.form = huhforms.TaskForm(&m.vals.title, &m.vals.description, &m.vals.priority, &m.vals.dueDate)
	default:
		return
	}
	m.mode = modeForm
}

// openProfileForm opens the profile editor pre-filled with the saved profile
func (m *Model) openProfileForm() {
	m.vals = formValues{profName: m.owner.Name, profEmail: m.owner.Email, profBio: m.owner.Bio}
	m.editingID = ""
	m.formKind = formProfile
	m.form = huhforms.ProfileForm(&m.vals.profName, &m.vals.profEmail, &m.vals.profBio)
	m.mode = modeForm
}

// submitForm persists the completed form through the matching service
func (m *Model) submitForm() {
	var err error

	switch m.formKind {
	case formLink:
		if m.editingID == "" {
			_, err = m.links.Create(m.ctx, link.CreateRequest{
				Title:       m.vals.title,
				URL:         m.vals.url,
				Description: m.vals.description,
				Tags:        m.vals.tags,
			})
		} else {
			_, err = m.links.Update(m.ctx, link.UpdateRequest{
				ID:          m.editingID,
				Title:       m.vals.title,
				URL:         m.vals.url,
				Description: m.vals.description,
				Tags:        m.vals.tags,
			})
		}
	case formDocument:
		err = m.submitDocument()
	case formCredential:
		if m.editingID == "" {
			_, err = m.credentials.Create(m.ctx, credential.CreateRequest{
				Title:    m.vals.title,
				Website:  m.vals.website,
				Username: m.vals.username,
				Secret:   m.vals.secret,
				Notes:    m.vals.notes,
			})
		} else {
			_, err = m.credentials.Update(m.ctx, credential.UpdateRequest{
				ID:       m.editingID,
				Title:    m.vals.title,
				Website:  m.vals.website,
				Username: m.vals.username,
				Secret:   m.vals.secret,
				Notes:    m.vals.notes,
			})
		}
	case formTask:
		if m.editingID == "" {
			_, err = m.tasks.Create(m.ctx, task.CreateRequest{
				Title:       m.vals.title,
				Description: m.vals.description,
				Priority:    m.vals.priority,
				DueDate:     m.vals.dueDate,
			})
		} else {
			_, err = m.tasks.Update(m.ctx, task.UpdateRequest{
				ID:          m.editingID,
				Title:       m.vals.title,
				Description: m.vals.description,
				Priority:    m.vals.priority,
				DueDate:     m.vals.dueDate,
			})
		}
	case formProfile:
		_, err = m.profiles.Save(m.ctx, profile.SaveRequest{
			Name:   m.vals.profName,
			Email:  m.vals.profEmail,
			Bio:    m.vals.profBio,
			Avatar: m.owner.Avatar,
		})
	}

	if err != nil {
		m.status = fmt.Sprintf("Error: %v", err)
	} else {
		m.status = ""
	}
	m.closeForm()
	m.reloadAll()
}

// submitDocument handles the document form, which uploads a file from disk
// on create and touches only metadata on edit.
func (m *Model) submitDocument() error {
	if m.editingID != "" {
		_, err := m.documents.UpdateMetadata(m.ctx, document.UpdateRequest{
			ID:          m.editingID,
			Name:        m.vals.name,
			Description: m.vals.description,
			Tags:        m.vals.tags,
		})
		return err
	}

	path := strings.TrimSpace(m.vals.path)
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	originalName := filepath.Base(path)
	name := strings.TrimSpace(m.vals.name)
	if name == "" {
		name = originalName
	}

	_, err = m.documents.Create(m.ctx, document.CreateRequest{
		Name:         name,
		OriginalName: originalName,
		Description:  m.vals.description,
		Tags:         m.vals.tags,
		Size:         int64(len(raw)),
		Data:         base64.StdEncoding.EncodeToString(raw),
	})
	return err
}

func (m *Model) closeForm() {
	m.form = nil
	m.formKind = formNone
	m.editingID = ""
	m.vals = formValues{}
	m.mode = modeNormal
}
