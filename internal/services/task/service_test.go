package task

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/soumyasagarnayak/appvault/internal/database"
	"github.com/soumyasagarnayak/appvault/internal/models"
	"github.com/soumyasagarnayak/appvault/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func setup(t *testing.T) (Service, *database.Repository) {
	t.Helper()
	repo := testutil.SetupTestRepository(t)
	return NewService(repo), repo
}

func createTask(t *testing.T, svc Service, title string) *models.Task {
	t.Helper()
	task, err := svc.Create(context.Background(), CreateRequest{Title: title})
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task
}

// ============================================================================
// TEST CASES - CREATE
// ============================================================================

func TestCreateTask(t *testing.T) {
	t.Parallel()

	svc, _ := setup(t)

	task, err := svc.Create(context.Background(), CreateRequest{
		Title:       "Write report",
		Description: "Quarterly numbers",
		Priority:    models.PriorityHigh,
		DueDate:     "2026-09-15",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.ID == "" {
		t.Error("Expected task ID to be set")
	}
	if task.Status != models.StatusPending {
		t.Errorf("Expected status pending, got %s", task.Status)
	}
	if task.Completed {
		t.Error("Expected new task to be incomplete")
	}
	if task.CompletedAt != nil {
		t.Error("Expected CompletedAt to be nil on a new task")
	}
	if task.Priority != models.PriorityHigh {
		t.Errorf("Expected priority high, got %s", task.Priority)
	}
}

func TestCreateTask_DefaultPriority(t *testing.T) {
	t.Parallel()

	svc, _ := setup(t)

	task := createTask(t, svc, "No priority given")
	if task.Priority != models.PriorityMedium {
		t.Errorf("Expected default priority medium, got %s", task.Priority)
	}
}

func TestCreateTask_Invalid(t *testing.T) {
	t.Parallel()

	svc, _ := setup(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateRequest{Title: "  "}); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("Expected ErrEmptyTitle, got %v", err)
	}
	if _, err := svc.Create(ctx, CreateRequest{Title: "x", Priority: "urgent"}); !errors.Is(err, ErrInvalidPriority) {
		t.Errorf("Expected ErrInvalidPriority, got %v", err)
	}
	if _, err := svc.Create(ctx, CreateRequest{Title: "x", DueDate: "15/09/2026"}); !errors.Is(err, ErrInvalidDueDate) {
		t.Errorf("Expected ErrInvalidDueDate, got %v", err)
	}
}

// ============================================================================
// TEST CASES - TOGGLE
// ============================================================================

func TestToggleMaintainsCompletionInvariant(t *testing.T) {
	t.Parallel()

	svc, _ := setup(t)
	ctx := context.Background()
	task := createTask(t, svc, "Toggle me")

	done, err := svc.Toggle(ctx, task.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !done.Completed {
		t.Error("Expected task to be completed")
	}
	if done.Status != models.StatusCompleted {
		t.Errorf("Expected status completed, got %s", done.Status)
	}
	if done.CompletedAt == nil {
		t.Fatal("Expected CompletedAt to be set")
	}

	undone, err := svc.Toggle(ctx, task.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if undone.Completed {
		t.Error("Expected task to be incomplete again")
	}
	if undone.Status != models.StatusPending {
		t.Errorf("Expected status pending, got %s", undone.Status)
	}
	if undone.CompletedAt != nil {
		t.Error("Expected CompletedAt cleared on un-complete")
	}

	// The toggled state is persisted
	stored, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(stored) != 1 || stored[0].Completed {
		t.Errorf("Expected one incomplete stored task, got %+v", stored)
	}
}

func TestToggleBumpsStreakOncePerDay(t *testing.T) {
	t.Parallel()

	svc, repo := setup(t)
	ctx := context.Background()

	first := createTask(t, svc, "First of the day")
	second := createTask(t, svc, "Second of the day")

	if _, err := svc.Toggle(ctx, first.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	streak, err := repo.GetStreak(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if streak != 1 {
		t.Errorf("Expected streak 1 after first completion, got %d", streak)
	}

	// Another completion on the same day does not bump again
	if _, err := svc.Toggle(ctx, second.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if streak, _ = repo.GetStreak(ctx); streak != 1 {
		t.Errorf("Expected streak still 1, got %d", streak)
	}

	// Un-completing never decrements
	if _, err := svc.Toggle(ctx, second.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if streak, _ = repo.GetStreak(ctx); streak != 1 {
		t.Errorf("Expected streak unchanged on un-complete, got %d", streak)
	}

	// Re-completing while the first completion of the day stands does not
	// bump either
	if _, err := svc.Toggle(ctx, second.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if streak, _ = repo.GetStreak(ctx); streak != 1 {
		t.Errorf("Expected streak still 1 after re-complete, got %d", streak)
	}
}

func TestToggle_NotFound(t *testing.T) {
	t.Parallel()

	svc, _ := setup(t)

	if _, err := svc.Toggle(context.Background(), "missing"); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound, got %v", err)
	}
}

// ============================================================================
// TEST CASES - UPDATE / DELETE
// ============================================================================

func TestUpdateTaskPreservesCompletionState(t *testing.T) {
	t.Parallel()

	svc, _ := setup(t)
	ctx := context.Background()
	task := createTask(t, svc, "Original")

	if _, err := svc.Toggle(ctx, task.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	updated, err := svc.Update(ctx, UpdateRequest{
		ID:       task.ID,
		Title:    "Renamed",
		Priority: models.PriorityLow,
		DueDate:  "2026-10-01",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if updated.Title != "Renamed" {
		t.Errorf("Expected title 'Renamed', got '%s'", updated.Title)
	}
	if !updated.Completed || updated.CompletedAt == nil {
		t.Error("Expected completion state to survive an edit")
	}
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()

	svc, _ := setup(t)
	ctx := context.Background()
	task := createTask(t, svc, "Goner")

	if err := svc.Delete(ctx, task.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := svc.Delete(ctx, task.ID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound, got %v", err)
	}
}

// ============================================================================
// TEST CASES - OVERDUE
// ============================================================================

func TestTaskOverdue(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.Local)

	pastDue := models.Task{Title: "late", DueDate: "2026-08-01"}
	if !pastDue.Overdue(now) {
		t.Error("Expected incomplete task past its due date to be overdue")
	}

	// Completion is judged per task, so a completed task is never overdue
	// regardless of any other task's state
	completedPastDue := models.Task{Title: "done late", DueDate: "2026-08-01", Completed: true}
	if completedPastDue.Overdue(now) {
		t.Error("Expected completed task not to be overdue")
	}

	future := models.Task{Title: "upcoming", DueDate: "2026-12-01"}
	if future.Overdue(now) {
		t.Error("Expected future due date not to be overdue")
	}

	undated := models.Task{Title: "no due date"}
	if undated.Overdue(now) {
		t.Error("Expected task without a due date not to be overdue")
	}
}
