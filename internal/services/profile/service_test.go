package profile

import (
	"context"
	"testing"

	"github.com/soumyasagarnayak/appvault/internal/testutil"
)

func TestSaveAndGetProfile(t *testing.T) {
	t.Parallel()

	svc := NewService(testutil.SetupTestRepository(t))
	ctx := context.Background()

	// Fresh store yields an empty profile
	p, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if p.Name != "" || p.Email != "" {
		t.Errorf("Expected empty profile, got %+v", p)
	}

	saved, err := svc.Save(ctx, SaveRequest{
		Name:  "Soumya",
		Email: "soumya@example.com",
		Bio:   "keeps everything in one place",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if saved.Name != "Soumya" {
		t.Errorf("Expected name 'Soumya', got %q", saved.Name)
	}

	got, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != saved {
		t.Errorf("Expected %+v, got %+v", saved, got)
	}
}

func TestSaveProfile_InvalidEmail(t *testing.T) {
	t.Parallel()

	svc := NewService(testutil.SetupTestRepository(t))

	if _, err := svc.Save(context.Background(), SaveRequest{Email: "not-an-email"}); err == nil {
		t.Error("Expected error for malformed email, got nil")
	}
}
