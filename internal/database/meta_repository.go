package database

import (
	"context"
	"database/sql"
	"log/slog"
	"strconv"

	"github.com/soumyasagarnayak/appvault/internal/models"
)

// MetaRepo persists the small scalar values: the streak counter, the
// quote-of-day cache, and the user profile.
type MetaRepo struct {
	db *sql.DB
}

// GetStreak returns the current streak counter.
// The streak is stored as an integer string; anything unparsable counts as 0.
func (r *MetaRepo) GetStreak(ctx context.Context) (int, error) {
	raw, ok, err := getValue(ctx, r.db, keyStreak)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("malformed streak counter, treating as 0", "value", raw)
		return 0, nil
	}
	return n, nil
}

// SetStreak stores the streak counter
func (r *MetaRepo) SetStreak(ctx context.Context, streak int) error {
	return setValue(ctx, r.db, keyStreak, strconv.Itoa(streak))
}

// GetDailyQuote returns the cached quote and the date string it was cached for
func (r *MetaRepo) GetDailyQuote(ctx context.Context) (quote, date string, err error) {
	quote, _, err = getValue(ctx, r.db, keyDailyQuote)
	if err != nil {
		return "", "", err
	}
	date, _, err = getValue(ctx, r.db, keyQuoteDate)
	if err != nil {
		return "", "", err
	}
	return quote, date, nil
}

// SetDailyQuote caches the quote for the given date string
func (r *MetaRepo) SetDailyQuote(ctx context.Context, quote, date string) error {
	if err := setValue(ctx, r.db, keyDailyQuote, quote); err != nil {
		return err
	}
	return setValue(ctx, r.db, keyQuoteDate, date)
}

// GetProfile returns the stored profile, or an empty profile when absent
func (r *MetaRepo) GetProfile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile
	if err := loadJSON(ctx, r.db, keyProfile, &profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

// SaveProfile stores the profile wholesale
func (r *MetaRepo) SaveProfile(ctx context.Context, profile models.Profile) error {
	return saveJSON(ctx, r.db, keyProfile, profile)
}
