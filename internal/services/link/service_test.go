package link

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/soumyasagarnayak/appvault/internal/testutil"
)

// ============================================================================
// TEST CASES - TAGS
// ============================================================================

func TestParseTags(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  []string
	}{
		{"", []string{}},
		{"  ,  , ", []string{}},
		{"go", []string{"go"}},
		{"go, tui, charm", []string{"go", "tui", "charm"}},
		{" go ,tui,, charm ", []string{"go", "tui", "charm"}},
	}

	for _, tc := range cases {
		if got := ParseTags(tc.input); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ParseTags(%q): expected %v, got %v", tc.input, tc.want, got)
		}
	}
}

// ============================================================================
// TEST CASES - CRUD
// ============================================================================

func TestCreateLink(t *testing.T) {
	t.Parallel()

	svc := NewService(testutil.SetupTestRepository(t))

	link, err := svc.Create(context.Background(), CreateRequest{
		Title:       "Go Blog",
		URL:         "https://go.dev/blog",
		Description: "Official blog",
		Tags:        "go, reading",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if link.ID == "" {
		t.Error("Expected link ID to be set")
	}
	if link.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}
	if !reflect.DeepEqual(link.Tags, []string{"go", "reading"}) {
		t.Errorf("Expected parsed tags, got %v", link.Tags)
	}
}

func TestCreateLink_Invalid(t *testing.T) {
	t.Parallel()

	svc := NewService(testutil.SetupTestRepository(t))
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateRequest{URL: "https://go.dev"}); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("Expected ErrEmptyTitle, got %v", err)
	}
	if _, err := svc.Create(ctx, CreateRequest{Title: "x"}); !errors.Is(err, ErrEmptyURL) {
		t.Errorf("Expected ErrEmptyURL, got %v", err)
	}
	if _, err := svc.Create(ctx, CreateRequest{Title: "x", URL: "not a url"}); err == nil {
		t.Error("Expected error for malformed URL, got nil")
	}
}

func TestUpdateLink(t *testing.T) {
	t.Parallel()

	svc := NewService(testutil.SetupTestRepository(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateRequest{Title: "Old", URL: "https://old.example.com"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	updated, err := svc.Update(ctx, UpdateRequest{
		ID:    created.ID,
		Title: "New",
		URL:   "https://new.example.com",
		Tags:  "fresh",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if updated.Title != "New" {
		t.Errorf("Expected title 'New', got '%s'", updated.Title)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("Expected CreatedAt preserved across an edit")
	}

	if _, err := svc.Update(ctx, UpdateRequest{ID: "missing", Title: "x", URL: "https://x.example.com"}); !errors.Is(err, ErrLinkNotFound) {
		t.Errorf("Expected ErrLinkNotFound, got %v", err)
	}
}

func TestDeleteLink(t *testing.T) {
	t.Parallel()

	svc := NewService(testutil.SetupTestRepository(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateRequest{Title: "Gone", URL: "https://gone.example.com"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(list) != 0 {
		t.Errorf("Expected empty store, got %d links", len(list))
	}

	if err := svc.Delete(ctx, created.ID); !errors.Is(err, ErrLinkNotFound) {
		t.Errorf("Expected ErrLinkNotFound, got %v", err)
	}
}
