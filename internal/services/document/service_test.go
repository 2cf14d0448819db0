package document

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/soumyasagarnayak/appvault/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func pdfRequest(name string) CreateRequest {
	payload := []byte("%PDF-1.4 test payload")
	return CreateRequest{
		Name:         name,
		OriginalName: name + ".pdf",
		Size:         int64(len(payload)),
		Data:         base64.StdEncoding.EncodeToString(payload),
	}
}

// ============================================================================
// TEST CASES
// ============================================================================

func TestCreateDocument(t *testing.T) {
	t.Parallel()

	svc := NewService(testutil.SetupTestRepository(t))

	doc, err := svc.Create(context.Background(), pdfRequest("manual"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if doc.ID == "" {
		t.Error("Expected document ID to be set")
	}
	if doc.OriginalName != "manual.pdf" {
		t.Errorf("Expected original name 'manual.pdf', got '%s'", doc.OriginalName)
	}
	if doc.CreatedAt.IsZero() || doc.UploadedAt.IsZero() {
		t.Error("Expected both timestamps to be set")
	}
	if doc.SavedAt().IsZero() {
		t.Error("Expected SavedAt to resolve")
	}
}

func TestCreateDocument_Invalid(t *testing.T) {
	t.Parallel()

	svc := NewService(testutil.SetupTestRepository(t))
	ctx := context.Background()

	req := pdfRequest("x")
	req.Name = "  "
	if _, err := svc.Create(ctx, req); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Expected ErrEmptyName, got %v", err)
	}

	req = pdfRequest("x")
	req.Data = ""
	if _, err := svc.Create(ctx, req); !errors.Is(err, ErrEmptyData) {
		t.Errorf("Expected ErrEmptyData, got %v", err)
	}

	req = pdfRequest("x")
	req.Data = "not base64 !!!"
	if _, err := svc.Create(ctx, req); err == nil {
		t.Error("Expected error for non-base64 payload, got nil")
	}
}

func TestUpdateMetadataLeavesPayloadAlone(t *testing.T) {
	t.Parallel()

	svc := NewService(testutil.SetupTestRepository(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, pdfRequest("notes"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	updated, err := svc.UpdateMetadata(ctx, UpdateRequest{
		ID:          created.ID,
		Name:        "renamed",
		Description: "now with a description",
		Tags:        "docs",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if updated.Name != "renamed" {
		t.Errorf("Expected name 'renamed', got '%s'", updated.Name)
	}
	if updated.Data != created.Data {
		t.Error("Expected payload untouched by a metadata edit")
	}
	if updated.Size != created.Size {
		t.Error("Expected size untouched by a metadata edit")
	}
	if updated.OriginalName != created.OriginalName {
		t.Error("Expected original name untouched by a metadata edit")
	}

	if _, err := svc.UpdateMetadata(ctx, UpdateRequest{ID: "missing", Name: "x"}); !errors.Is(err, ErrDocumentNotFound) {
		t.Errorf("Expected ErrDocumentNotFound, got %v", err)
	}
}

func TestDeleteDocument(t *testing.T) {
	t.Parallel()

	svc := NewService(testutil.SetupTestRepository(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, pdfRequest("old"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, ErrDocumentNotFound) {
		t.Errorf("Expected ErrDocumentNotFound, got %v", err)
	}
}
