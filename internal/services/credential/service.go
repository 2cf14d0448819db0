// Package credential implements the password store operations: CRUD with
// strength recomputation, the strength evaluator, and the secret generator.
package credential

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/soumyasagarnayak/appvault/internal/database"
	"github.com/soumyasagarnayak/appvault/internal/models"
)

// Service defines all credential business operations
type Service interface {
	List(ctx context.Context) ([]models.Credential, error)
	Create(ctx context.Context, req CreateRequest) (*models.Credential, error)
	Update(ctx context.Context, req UpdateRequest) (*models.Credential, error)
	Delete(ctx context.Context, id string) error
}

// CreateRequest encapsulates the data needed to create a credential
type CreateRequest struct {
	Title    string `validate:"required,max=255"`
	Website  string `validate:"max=2048"`
	Username string `validate:"max=255"`
	Secret   string `validate:"required"`
	Notes    string
}

// UpdateRequest encapsulates a full-record replacement of a credential
type UpdateRequest struct {
	ID       string `validate:"required"`
	Title    string `validate:"required,max=255"`
	Website  string `validate:"max=2048"`
	Username string `validate:"max=255"`
	Secret   string `validate:"required"`
	Notes    string
}

type service struct {
	repo     database.CredentialRepository
	validate *validator.Validate
}

// NewService creates a new credential service
func NewService(repo database.CredentialRepository) Service {
	return &service{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *service) List(ctx context.Context) ([]models.Credential, error) {
	return s.repo.GetAllCredentials(ctx)
}

// Create stores a new credential. Strength is computed from the secret at
// creation time, never carried in from the caller.
func (s *service) Create(ctx context.Context, req CreateRequest) (*models.Credential, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrEmptyTitle
	}
	if req.Secret == "" {
		return nil, ErrEmptySecret
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid credential: %w", err)
	}

	now := time.Now()
	cred := models.Credential{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(req.Title),
		Website:   strings.TrimSpace(req.Website),
		Username:  strings.TrimSpace(req.Username),
		Secret:    req.Secret,
		Notes:     req.Notes,
		Strength:  EvaluateStrength(req.Secret),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.CreateCredential(ctx, cred); err != nil {
		return nil, fmt.Errorf("failed to create credential: %w", err)
	}
	return &cred, nil
}

// Update replaces a credential wholesale, recomputing strength from the new
// secret so it can never go stale.
func (s *service) Update(ctx context.Context, req UpdateRequest) (*models.Credential, error) {
	if req.ID == "" {
		return nil, ErrInvalidID
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrEmptyTitle
	}
	if req.Secret == "" {
		return nil, ErrEmptySecret
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid credential: %w", err)
	}

	creds, err := s.repo.GetAllCredentials(ctx)
	if err != nil {
		return nil, err
	}
	var existing *models.Credential
	for i := range creds {
		if creds[i].ID == req.ID {
			existing = &creds[i]
			break
		}
	}
	if existing == nil {
		return nil, ErrCredentialNotFound
	}

	cred := models.Credential{
		ID:        existing.ID,
		Title:     strings.TrimSpace(req.Title),
		Website:   strings.TrimSpace(req.Website),
		Username:  strings.TrimSpace(req.Username),
		Secret:    req.Secret,
		Notes:     req.Notes,
		Strength:  EvaluateStrength(req.Secret),
		CreatedAt: existing.CreatedAt,
		UpdatedAt: time.Now(),
	}
	if err := s.repo.UpdateCredential(ctx, cred); err != nil {
		return nil, fmt.Errorf("failed to update credential: %w", err)
	}
	return &cred, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidID
	}
	if err := s.repo.DeleteCredential(ctx, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrCredentialNotFound
		}
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}
