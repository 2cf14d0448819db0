// Package link implements the bookmark store operations
package link

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

// Service defines all link business operations
type Service interface {
	List(ctx context.Context) ([]models.Link, error)
	Create(ctx context.Context, req CreateRequest) (*models.Link, error)
	Update(ctx context.Context, req UpdateRequest) (*models.Link, error)
	Delete(ctx context.Context, id string) error
}

// CreateRequest encapsulates the data needed to save a link.
// Tags arrive as a comma-separated string, as typed in the form.
type CreateRequest struct {
	Title       string `validate:"required,max=255"`
	URL         string `validate:"required,url"`
	Description string
	Tags        string
}

// UpdateRequest encapsulates a full-record replacement of a link
type UpdateRequest struct {
	ID          string `validate:"required"`
	Title       string `validate:"required,max=255"`
	URL         string `validate:"required,url"`
	Description string
	Tags        string
}

type service struct {
	repo     database.LinkRepository
	validate *validator.Validate
}

// NewService creates a new link service
func NewService(repo database.LinkRepository) Service {
	return &service{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *service) List(ctx context.Context) ([]models.Link, error) {
	return s.repo.GetAllLinks(ctx)
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*models.Link, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrEmptyTitle
	}
	if strings.TrimSpace(req.URL) == "" {
		return nil, ErrEmptyURL
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid link: %w", err)
	}

	link := models.Link{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		URL:         strings.TrimSpace(req.URL),
		Description: req.Description,
		Tags:        ParseTags(req.Tags),
		CreatedAt:   time.Now(),
	}
	if err := s.repo.CreateLink(ctx, link); err != nil {
		return nil, fmt.Errorf("failed to create link: %w", err)
	}
	return &link, nil
}

func (s *service) Update(ctx context.Context, req UpdateRequest) (*models.Link, error) {
	if req.ID == "" {
		return nil, ErrInvalidID
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrEmptyTitle
	}
	if strings.TrimSpace(req.URL) == "" {
		return nil, ErrEmptyURL
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid link: %w", err)
	}

	links, err := s.repo.GetAllLinks(ctx)
	if err != nil {
		return nil, err
	}
	var existing *models.Link
	for i := range links {
		if links[i].ID == req.ID {
			existing = &links[i]
			break
		}
	}
	if existing == nil {
		return nil, ErrLinkNotFound
	}

	link := models.Link{
		ID:          existing.ID,
		Title:       strings.TrimSpace(req.Title),
		URL:         strings.TrimSpace(req.URL),
		Description: req.Description,
		Tags:        ParseTags(req.Tags),
		CreatedAt:   existing.CreatedAt,
	}
	if err := s.repo.UpdateLink(ctx, link); err != nil {
		return nil, fmt.Errorf("failed to update link: %w", err)
	}
	return &link, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidID
	}
	if err := s.repo.DeleteLink(ctx, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrLinkNotFound
		}
		return fmt.Errorf("failed to delete link: %w", err)
	}
	return nil
}

// ParseTags splits a comma-separated tag string, trimming whitespace and
// dropping empty entries.
func ParseTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
