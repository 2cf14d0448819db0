// Package profile implements the vault owner's profile operations
package profile

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/soumyasagarnayak/appvault/internal/database"
	"github.com/soumyasagarnayak/appvault/internal/models"
)

// Service defines the profile operations
type Service interface {
	Get(ctx context.Context) (models.Profile, error)
	Save(ctx context.Context, req SaveRequest) (models.Profile, error)
}

// SaveRequest replaces the profile wholesale
type SaveRequest struct {
	Name   string `validate:"max=255"`
	Email  string `validate:"omitempty,email"`
	Bio    string `validate:"max=5000"`
	Avatar string `validate:"omitempty,base64"`
}

type service struct {
	repo     database.MetaRepository
	validate *validator.Validate
}

// NewService creates a new profile service
func NewService(repo database.MetaRepository) Service {
	return &service{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *service) Get(ctx context.Context) (models.Profile, error) {
	return s.repo.GetProfile(ctx)
}

func (s *service) Save(ctx context.Context, req SaveRequest) (models.Profile, error) {
	if err := s.validate.Struct(req); err != nil {
		return models.Profile{}, fmt.Errorf("invalid profile: %w", err)
	}
	profile := models.Profile{
		Name:   req.Name,
		Email:  req.Email,
		Bio:    req.Bio,
		Avatar: req.Avatar,
	}
	if err := s.repo.SaveProfile(ctx, profile); err != nil {
		return models.Profile{}, fmt.Errorf("failed to save profile: %w", err)
	}
	return profile, nil
}
