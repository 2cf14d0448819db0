package database

import (
	"context"
	"database/sql"

	"github.com/soumyasagarnayak/appvault/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes store-specific repositories using struct embedding.
type Repository struct {
	*LinkRepo
	*DocumentRepo
	*CredentialRepo
	*TaskRepo
	*MetaRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		LinkRepo:       &LinkRepo{db: db},
		DocumentRepo:   &DocumentRepo{db: db},
		CredentialRepo: &CredentialRepo{db: db},
		TaskRepo:       &TaskRepo{db: db},
		MetaRepo:       &MetaRepo{db: db},
	}
}

// Wrapper methods for LinkRepo

func (r *Repository) GetAllLinks(ctx context.Context) ([]models.Link, error) {
	return r.LinkRepo.GetAll(ctx)
}

func (r *Repository) SaveAllLinks(ctx context.Context, links []models.Link) error {
	return r.LinkRepo.SaveAll(ctx, links)
}

func (r *Repository) CreateLink(ctx context.Context, link models.Link) error {
	return r.LinkRepo.Create(ctx, link)
}

func (r *Repository) UpdateLink(ctx context.Context, link models.Link) error {
	return r.LinkRepo.Update(ctx, link)
}

func (r *Repository) DeleteLink(ctx context.Context, id string) error {
	return r.LinkRepo.Delete(ctx, id)
}

// Wrapper methods for DocumentRepo

func (r *Repository) GetAllDocuments(ctx context.Context) ([]models.Document, error) {
	return r.DocumentRepo.GetAll(ctx)
}

func (r *Repository) SaveAllDocuments(ctx context.Context, docs []models.Document) error {
	return r.DocumentRepo.SaveAll(ctx, docs)
}

func (r *Repository) CreateDocument(ctx context.Context, doc models.Document) error {
	return r.DocumentRepo.Create(ctx, doc)
}

func (r *Repository) UpdateDocument(ctx context.Context, doc models.Document) error {
	return r.DocumentRepo.Update(ctx, doc)
}

func (r *Repository) DeleteDocument(ctx context.Context, id string) error {
	return r.DocumentRepo.Delete(ctx, id)
}

// Wrapper methods for CredentialRepo

func (r *Repository) GetAllCredentials(ctx context.Context) ([]models.Credential, error) {
	return r.CredentialRepo.GetAll(ctx)
}

func (r *Repository) SaveAllCredentials(ctx context.Context, creds []models.Credential) error {
	return r.CredentialRepo.SaveAll(ctx, creds)
}

func (r *Repository) CreateCredential(ctx context.Context, cred models.Credential) error {
	return r.CredentialRepo.Create(ctx, cred)
}

func (r *Repository) UpdateCredential(ctx context.Context, cred models.Credential) error {
	return r.CredentialRepo.Update(ctx, cred)
}

func (r *Repository) DeleteCredential(ctx context.Context, id string) error {
	return r.CredentialRepo.Delete(ctx, id)
}

// Wrapper methods for TaskRepo

func (r *Repository) GetAllTasks(ctx context.Context) ([]models.Task, error) {
	return r.TaskRepo.GetAll(ctx)
}

func (r *Repository) SaveAllTasks(ctx context.Context, tasks []models.Task) error {
	return r.TaskRepo.SaveAll(ctx, tasks)
}

func (r *Repository) CreateTask(ctx context.Context, task models.Task) error {
	return r.TaskRepo.Create(ctx, task)
}

func (r *Repository) GetTaskByID(ctx context.Context, id string) (*models.Task, error) {
	return r.TaskRepo.GetByID(ctx, id)
}

func (r *Repository) UpdateTask(ctx context.Context, task models.Task) error {
	return r.TaskRepo.Update(ctx, task)
}

func (r *Repository) DeleteTask(ctx context.Context, id string) error {
	return r.TaskRepo.Delete(ctx, id)
}
