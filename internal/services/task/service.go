// Package task implements the todo store operations, including completion
// toggling with its streak side effect.
package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/soumyasagarnayak/appvault/internal/database"
	"github.com/soumyasagarnayak/appvault/internal/models"
	"github.com/soumyasagarnayak/appvault/internal/services/activity"
)

// Repo is the slice of the data store the task service needs: the tasks
// collection plus the streak counter.
type Repo interface {
	database.TaskRepository
	database.MetaRepository
}

// Service defines all task business operations
type Service interface {
	List(ctx context.Context) ([]models.Task, error)
	Create(ctx context.Context, req CreateRequest) (*models.Task, error)
	Update(ctx context.Context, req UpdateRequest) (*models.Task, error)
	Delete(ctx context.Context, id string) error

	// Toggle flips a task's completion state, maintaining the invariant
	// that CompletedAt is set exactly when Completed is true.
	Toggle(ctx context.Context, id string) (*models.Task, error)
}

// CreateRequest encapsulates the data needed to create a task
type CreateRequest struct {
	Title       string `validate:"required,max=255"`
	Description string `validate:"max=5000"`
	Priority    models.Priority
	DueDate     string `validate:"omitempty,datetime=2006-01-02"`
}

// UpdateRequest encapsulates a full-record replacement of a task's editable
// fields. Completion state is changed only through Toggle.
type UpdateRequest struct {
	ID          string `validate:"required"`
	Title       string `validate:"required,max=255"`
	Description string `validate:"max=5000"`
	Priority    models.Priority
	DueDate     string `validate:"omitempty,datetime=2006-01-02"`
}

type service struct {
	repo     Repo
	validate *validator.Validate
}

// NewService creates a new task service
func NewService(repo Repo) Service {
	return &service{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *service) List(ctx context.Context) ([]models.Task, error) {
	return s.repo.GetAllTasks(ctx)
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*models.Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrEmptyTitle
	}
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		return nil, ErrInvalidPriority
	}
	if req.DueDate != "" {
		if _, err := time.Parse("2006-01-02", req.DueDate); err != nil {
			return nil, ErrInvalidDueDate
		}
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid task: %w", err)
	}

	task := models.Task{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Priority:    priority,
		Status:      models.StatusPending,
		DueDate:     req.DueDate,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &task, nil
}

func (s *service) Update(ctx context.Context, req UpdateRequest) (*models.Task, error) {
	if req.ID == "" {
		return nil, ErrInvalidID
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrEmptyTitle
	}
	if !req.Priority.Valid() {
		return nil, ErrInvalidPriority
	}
	if req.DueDate != "" {
		if _, err := time.Parse("2006-01-02", req.DueDate); err != nil {
			return nil, ErrInvalidDueDate
		}
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid task: %w", err)
	}

	existing, err := s.repo.GetTaskByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	task := *existing
	task.Title = strings.TrimSpace(req.Title)
	task.Description = req.Description
	task.Priority = req.Priority
	task.DueDate = req.DueDate
	if err := s.repo.UpdateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return &task, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidID
	}
	if err := s.repo.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// Toggle flips completion. Completing the first task of a local calendar day
// bumps the streak counter; un-completing never decrements it.
func (s *service) Toggle(ctx context.Context, id string) (*models.Task, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	tasks, err := s.repo.GetAllTasks(ctx)
	if err != nil {
		return nil, err
	}

	var task *models.Task
	for i := range tasks {
		if tasks[i].ID == id {
			task = &tasks[i]
			break
		}
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if task.Completed {
		task.Completed = false
		task.Status = models.StatusPending
		task.CompletedAt = nil
	} else {
		now := time.Now()
		today := activity.DayKey(now)

		firstToday := true
		for i := range tasks {
			other := &tasks[i]
			if other.ID == id || !other.Completed || other.CompletedAt == nil {
				continue
			}
			if activity.DayKey(other.CompletedAt.In(now.Location())) == today {
				firstToday = false
				break
			}
		}

		task.Completed = true
		task.Status = models.StatusCompleted
		task.CompletedAt = &now

		if firstToday {
			streak, err := s.repo.GetStreak(ctx)
			if err != nil {
				slog.Error("failed to read streak", "error", err)
			} else if err := s.repo.SetStreak(ctx, streak+1); err != nil {
				slog.Error("failed to bump streak", "error", err)
			}
		}
	}

	if err := s.repo.SaveAllTasks(ctx, tasks); err != nil {
		return nil, fmt.Errorf("failed to save tasks: %w", err)
	}
	return task, nil
}
