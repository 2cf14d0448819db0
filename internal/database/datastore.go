package database

import (
	"context"

	"github.com/soumyasagarnayak/appvault/internal/models"
)

// DataStore defines the unified interface for all data operations needed by the
// services and the TUI. It is composed of smaller, store-specific interfaces so
// consumers can depend on just the collection they touch.
type DataStore interface {
	LinkRepository
	DocumentRepository
	CredentialRepository
	TaskRepository
	MetaRepository
}

// LinkRepository defines operations on the links store
type LinkRepository interface {
	GetAllLinks(ctx context.Context) ([]models.Link, error)
	SaveAllLinks(ctx context.Context, links []models.Link) error
	CreateLink(ctx context.Context, link models.Link) error
	UpdateLink(ctx context.Context, link models.Link) error
	DeleteLink(ctx context.Context, id string) error
}

// DocumentRepository defines operations on the documents store
type DocumentRepository interface {
	GetAllDocuments(ctx context.Context) ([]models.Document, error)
	SaveAllDocuments(ctx context.Context, docs []models.Document) error
	CreateDocument(ctx context.Context, doc models.Document) error
	UpdateDocument(ctx context.Context, doc models.Document) error
	DeleteDocument(ctx context.Context, id string) error
}

// CredentialRepository defines operations on the credentials store
type CredentialRepository interface {
	GetAllCredentials(ctx context.Context) ([]models.Credential, error)
	SaveAllCredentials(ctx context.Context, creds []models.Credential) error
	CreateCredential(ctx context.Context, cred models.Credential) error
	UpdateCredential(ctx context.Context, cred models.Credential) error
	DeleteCredential(ctx context.Context, id string) error
}

// TaskRepository defines operations on the tasks store
type TaskRepository interface {
	GetAllTasks(ctx context.Context) ([]models.Task, error)
	SaveAllTasks(ctx context.Context, tasks []models.Task) error
	CreateTask(ctx context.Context, task models.Task) error
	GetTaskByID(ctx context.Context, id string) (*models.Task, error)
	UpdateTask(ctx context.Context, task models.Task) error
	DeleteTask(ctx context.Context, id string) error
}

// MetaRepository defines operations on the scalar values: streak counter,
// quote-of-day cache, and profile
type MetaRepository interface {
	GetStreak(ctx context.Context) (int, error)
	SetStreak(ctx context.Context, streak int) error
	GetDailyQuote(ctx context.Context) (quote, date string, err error)
	SetDailyQuote(ctx context.Context, quote, date string) error
	GetProfile(ctx context.Context) (models.Profile, error)
	SaveProfile(ctx context.Context, profile models.Profile) error
}
