package database

import (
	"context"
	"database/sql"

	"github.com/soumyasagarnayak/appvault/internal/models"
)

// TaskRepo persists the tasks collection wholesale under its store key
type TaskRepo struct {
	db *sql.DB
}

// GetAll returns every stored task. Missing or malformed data yields an
// empty collection.
func (r *TaskRepo) GetAll(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := loadJSON(ctx, r.db, keyTasks, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// SaveAll replaces the entire tasks collection
func (r *TaskRepo) SaveAll(ctx context.Context, tasks []models.Task) error {
	return saveJSON(ctx, r.db, keyTasks, tasks)
}

// Create appends a task to the collection
func (r *TaskRepo) Create(ctx context.Context, task models.Task) error {
	tasks, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	tasks = append(tasks, task)
	return r.SaveAll(ctx, tasks)
}

// GetByID returns the task with the given ID
func (r *TaskRepo) GetByID(ctx context.Context, id string) (*models.Task, error) {
	tasks, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}
	return nil, ErrNotFound
}

// Update replaces the stored task with the same ID
func (r *TaskRepo) Update(ctx context.Context, task models.Task) error {
	tasks, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].ID == task.ID {
			tasks[i] = task
			return r.SaveAll(ctx, tasks)
		}
	}
	return ErrNotFound
}

// Delete removes the task with the given ID
func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	tasks, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			tasks = append(tasks[:i], tasks[i+1:]...)
			return r.SaveAll(ctx, tasks)
		}
	}
	return ErrNotFound
}
