package credential

import (
	"strings"
	"testing"

	"github.com/soumyasagarnayak/appvault/internal/models"
)

// ============================================================================
// TEST CASES - STRENGTH
// ============================================================================

func TestEvaluateStrength(t *testing.T) {
	t.Parallel()

	cases := []struct {
		secret string
		want   models.Strength
	}{
		{"", models.StrengthWeak},
		{"a", models.StrengthWeak},
		{"abcdefg", models.StrengthWeak},       // lowercase only, short
		{"password", models.StrengthWeak},      // length 8 + lowercase = 2 checks
		{"Abcdefgh1", models.StrengthMedium},   // 4 checks: len 8, lower, upper, digit
		{"abcdefgh1!", models.StrengthMedium},  // 4 checks: len 8, lower, digit, symbol
		{"Abcdefgh12!@", models.StrengthStrong}, // all 6 checks
		{"Tr0ub4dor&3xtra", models.StrengthStrong},
	}

	for _, tc := range cases {
		if got := EvaluateStrength(tc.secret); got != tc.want {
			t.Errorf("EvaluateStrength(%q): expected %s, got %s", tc.secret, tc.want, got)
		}
	}
}

// ============================================================================
// TEST CASES - GENERATOR
// ============================================================================

func TestGenerateLength(t *testing.T) {
	t.Parallel()

	for _, length := range []int{4, 12, DefaultLength, 64} {
		if got := len(Generate(length)); got != length {
			t.Errorf("Expected length %d, got %d", length, got)
		}
	}

	// Requests below the class minimum are raised to 4
	if got := len(Generate(1)); got != 4 {
		t.Errorf("Expected minimum length 4, got %d", got)
	}
}

func TestGenerateContainsAllClasses(t *testing.T) {
	t.Parallel()

	for i := 0; i < 50; i++ {
		secret := Generate(DefaultLength)
		if !strings.ContainsAny(secret, upperChars) {
			t.Fatalf("Expected an uppercase character in %q", secret)
		}
		if !strings.ContainsAny(secret, lowerChars) {
			t.Fatalf("Expected a lowercase character in %q", secret)
		}
		if !strings.ContainsAny(secret, digitChars) {
			t.Fatalf("Expected a digit in %q", secret)
		}
		if !strings.ContainsAny(secret, symbolChars) {
			t.Fatalf("Expected a symbol in %q", secret)
		}
	}
}

func TestGeneratedSecretScoresStrong(t *testing.T) {
	t.Parallel()

	if got := EvaluateStrength(Generate(DefaultLength)); got != models.StrengthStrong {
		t.Errorf("Expected generated secret to score strong, got %s", got)
	}
}
