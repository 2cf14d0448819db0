// Package document implements the PDF store operations. Payloads are held
// inline as base64, matching the stored collection shape.
package document

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
	"github.com/soumyasagarnayak/appvault/internal/services/link"
)

// Service defines all document business operations
type Service interface {
	List(ctx context.Context) ([]models.Document, error)
	Create(ctx context.Context, req CreateRequest) (*models.Document, error)
	UpdateMetadata(ctx context.Context, req UpdateRequest) (*models.Document, error)
	Delete(ctx context.Context, id string) error
}

// CreateRequest encapsulates the data needed to store a document
type CreateRequest struct {
	Name         string `validate:"required,max=255"`
	OriginalName string `validate:"required,max=255"`
	Description  string
	Tags         string
	Size         int64  `validate:"gte=0"`
	Data         string `validate:"required,base64"`
}

// UpdateRequest replaces a document's metadata. The payload itself is
// immutable after upload; re-uploading creates a new record.
type UpdateRequest struct {
	ID          string `validate:"required"`
	Name        string `validate:"required,max=255"`
	Description string
	Tags        string
}

type service struct {
	repo     database.DocumentRepository
	validate *validator.Validate
}

// NewService creates a new document service
func NewService(repo database.DocumentRepository) Service {
	return &service{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *service) List(ctx context.Context) ([]models.Document, error) {
	return s.repo.GetAllDocuments(ctx)
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*models.Document, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.Data == "" {
		return nil, ErrEmptyData
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}

	now := time.Now()
	doc := models.Document{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		OriginalName: req.OriginalName,
		Description:  req.Description,
		Tags:         link.ParseTags(req.Tags),
		Size:         req.Size,
		CreatedAt:    now,
		UploadedAt:   now,
		Data:         req.Data,
	}
	if err := s.repo.CreateDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	return &doc, nil
}

func (s *service) UpdateMetadata(ctx context.Context, req UpdateRequest) (*models.Document, error) {
	if req.ID == "" {
		return nil, ErrInvalidID
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}

	docs, err := s.repo.GetAllDocuments(ctx)
	if err != nil {
		return nil, err
	}
	var existing *models.Document
	for i := range docs {
		if docs[i].ID == req.ID {
			existing = &docs[i]
			break
		}
	}
	if existing == nil {
		return nil, ErrDocumentNotFound
	}

	doc := *existing
	doc.Name = strings.TrimSpace(req.Name)
	doc.Description = req.Description
	doc.Tags = link.ParseTags(req.Tags)
	if err := s.repo.UpdateDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}
	return &doc, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidID
	}
	if err := s.repo.DeleteDocument(ctx, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}
