package credential

import "github.com/soumyasagarnayak/appvault/internal/models"

// EvaluateStrength scores a candidate secret's composition across six checks,
// one point each: length >= 8, length >= 12, lowercase, uppercase, digit,
// symbol. Score <= 2 is weak, <= 4 medium, otherwise strong.
func EvaluateStrength(secret string) models.Strength {
	score := 0
	if len(secret) >= 8 {
		score++
	}
	if len(secret) >= 12 {
		score++
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range secret {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	if hasLower {
		score++
	}
	if hasUpper {
		score++
	}
	if hasDigit {
		score++
	}
	if hasSymbol {
		score++
	}

	switch {
	case score <= 2:
		return models.StrengthWeak
	case score <= 4:
		return models.StrengthMedium
	default:
		return models.StrengthStrong
	}
}
