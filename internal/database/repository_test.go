package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/soumyasagarnayak/appvault/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	if err := runMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})
	return db
}

func setupTestRepository(t *testing.T) (*Repository, *sql.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewRepository(db), db
}

// ============================================================================
// TEST CASES - COLLECTIONS
// ============================================================================

func TestLinkRoundTrip(t *testing.T) {
	t.Parallel()

	repo, _ := setupTestRepository(t)
	ctx := context.Background()

	link := models.Link{
		ID:        "l1",
		Title:     "Go Blog",
		URL:       "https://go.dev/blog",
		Tags:      []string{"go"},
		CreatedAt: time.Now().Truncate(time.Second),
	}
	if err := repo.CreateLink(ctx, link); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	links, err := repo.GetAllLinks(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(links) != 1 {
		t.Fatalf("Expected 1 link, got %d", len(links))
	}
	if links[0].ID != "l1" || links[0].Title != "Go Blog" {
		t.Errorf("Unexpected stored link: %+v", links[0])
	}

	link.Title = "Renamed"
	if err := repo.UpdateLink(ctx, link); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	links, _ = repo.GetAllLinks(ctx)
	if links[0].Title != "Renamed" {
		t.Errorf("Expected updated title, got '%s'", links[0].Title)
	}

	if err := repo.DeleteLink(ctx, "l1"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	links, _ = repo.GetAllLinks(ctx)
	if len(links) != 0 {
		t.Errorf("Expected empty collection after delete, got %d", len(links))
	}
}

func TestUpdateAndDeleteMissingRecords(t *testing.T) {
	t.Parallel()

	repo, _ := setupTestRepository(t)
	ctx := context.Background()

	if err := repo.UpdateLink(ctx, models.Link{ID: "nope"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound from UpdateLink, got %v", err)
	}
	if err := repo.DeleteDocument(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound from DeleteDocument, got %v", err)
	}
	if err := repo.DeleteCredential(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound from DeleteCredential, got %v", err)
	}
	if _, err := repo.GetTaskByID(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound from GetTaskByID, got %v", err)
	}
}

func TestTaskGetByID(t *testing.T) {
	t.Parallel()

	repo, _ := setupTestRepository(t)
	ctx := context.Background()

	task := models.Task{ID: "t1", Title: "find me", Priority: models.PriorityLow, Status: models.StatusPending}
	if err := repo.CreateTask(ctx, task); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	got, err := repo.GetTaskByID(ctx, "t1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.Title != "find me" {
		t.Errorf("Expected title 'find me', got '%s'", got.Title)
	}
}

func TestSaveAllReplacesWholesale(t *testing.T) {
	t.Parallel()

	repo, _ := setupTestRepository(t)
	ctx := context.Background()

	if err := repo.SaveAllCredentials(ctx, []models.Credential{
		{ID: "c1", Title: "one", Secret: "a"},
		{ID: "c2", Title: "two", Secret: "b"},
	}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := repo.SaveAllCredentials(ctx, []models.Credential{
		{ID: "c3", Title: "three", Secret: "c"},
	}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	creds, err := repo.GetAllCredentials(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(creds) != 1 || creds[0].ID != "c3" {
		t.Errorf("Expected wholesale replacement, got %+v", creds)
	}
}

// ============================================================================
// TEST CASES - CORRUPT DATA
// ============================================================================

func TestMalformedCollectionDegradesToEmpty(t *testing.T) {
	t.Parallel()

	repo, db := setupTestRepository(t)
	ctx := context.Background()

	if err := setValue(ctx, db, keyTasks, "{not json"); err != nil {
		t.Fatalf("Failed to inject malformed value: %v", err)
	}

	tasks, err := repo.GetAllTasks(ctx)
	if err != nil {
		t.Fatalf("Expected malformed data to degrade, got error %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("Expected empty collection, got %d tasks", len(tasks))
	}

	// The store remains writable afterwards
	if err := repo.CreateTask(ctx, models.Task{ID: "t1", Title: "recovered"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	tasks, _ = repo.GetAllTasks(ctx)
	if len(tasks) != 1 {
		t.Errorf("Expected 1 task after recovery, got %d", len(tasks))
	}
}

func TestMalformedStreakCountsAsZero(t *testing.T) {
	t.Parallel()

	repo, db := setupTestRepository(t)
	ctx := context.Background()

	if err := setValue(ctx, db, keyStreak, "not-a-number"); err != nil {
		t.Fatalf("Failed to inject malformed value: %v", err)
	}

	streak, err := repo.GetStreak(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if streak != 0 {
		t.Errorf("Expected streak 0, got %d", streak)
	}
}

// ============================================================================
// TEST CASES - META
// ============================================================================

func TestStreakRoundTrip(t *testing.T) {
	t.Parallel()

	repo, _ := setupTestRepository(t)
	ctx := context.Background()

	streak, err := repo.GetStreak(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if streak != 0 {
		t.Errorf("Expected 0 on fresh store, got %d", streak)
	}

	if err := repo.SetStreak(ctx, 7); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if streak, _ = repo.GetStreak(ctx); streak != 7 {
		t.Errorf("Expected 7, got %d", streak)
	}
}

func TestDailyQuoteRoundTrip(t *testing.T) {
	t.Parallel()

	repo, _ := setupTestRepository(t)
	ctx := context.Background()

	if err := repo.SetDailyQuote(ctx, "stay curious", "2026-08-31"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	quote, date, err := repo.GetDailyQuote(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if quote != "stay curious" || date != "2026-08-31" {
		t.Errorf("Expected stored quote and date, got (%q, %q)", quote, date)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	t.Parallel()

	repo, _ := setupTestRepository(t)
	ctx := context.Background()

	// Fresh store yields an empty profile, not an error
	empty, err := repo.GetProfile(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if empty != (models.Profile{}) {
		t.Errorf("Expected empty profile, got %+v", empty)
	}

	saved := models.Profile{Name: "Sam", Email: "sam@example.com", Bio: "likes terminals"}
	if err := repo.SaveProfile(ctx, saved); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	got, err := repo.GetProfile(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != saved {
		t.Errorf("Expected %+v, got %+v", saved, got)
	}
}

// ============================================================================
// TEST CASES - UPSERT
// ============================================================================

func TestSetValueUpserts(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := context.Background()

	if err := setValue(ctx, db, "k", "first"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := setValue(ctx, db, "k", "second"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	value, ok, err := getValue(ctx, db, "k")
	if err != nil || !ok {
		t.Fatalf("Expected value present, got ok=%v err=%v", ok, err)
	}
	if value != "second" {
		t.Errorf("Expected 'second', got %q", value)
	}
}
