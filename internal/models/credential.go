package models

import "time"

// Strength is the bucketed composition score of a credential's secret
type Strength string

const (
	StrengthWeak   Strength = "weak"
	StrengthMedium Strength = "medium"
	StrengthStrong Strength = "strong"
)

// Valid reports whether s is one of the three known tiers
func (s Strength) Valid() bool {
	switch s {
	case StrengthWeak, StrengthMedium, StrengthStrong:
		return true
	}
	return false
}

// Credential is a stored login secret for a website or service
type Credential struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Website   string    `json:"website"`
	Username  string    `json:"username"`
	Secret    string    `json:"password"`
	Notes     string    `json:"notes"`
	Strength  Strength  `json:"strength"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
