// Package calendar builds the monthly day grid and classifies days into
// activity tiers from the aggregator's per-day mapping.
package calendar

import (
	"time"

	"github.com/soumyasagarnayak/appvault/internal/models"
	"github.com/soumyasagarnayak/appvault/internal/services/activity"
)

// Tier is the bucketed classification of a day's total activity
type Tier string

const (
	TierNone   Tier = "none"
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// TierFor classifies a total activity count
func TierFor(total int) Tier {
	switch {
	case total == 0:
		return TierNone
	case total <= 2:
		return TierLow
	case total <= 5:
		return TierMedium
	default:
		return TierHigh
	}
}

// MonthGrid returns the cells of the month's calendar page, Sunday-first.
// Leading cells before the 1st are zero times so the first day lands on its
// weekday column.
func MonthGrid(month time.Time) []time.Time {
	year, m, _ := month.Date()
	first := time.Date(year, m, 1, 0, 0, 0, 0, month.Location())
	last := time.Date(year, m+1, 0, 0, 0, 0, 0, month.Location())

	cells := make([]time.Time, 0, 6*7)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, time.Time{})
	}
	for day := 1; day <= last.Day(); day++ {
		cells = append(cells, time.Date(year, m, day, 0, 0, 0, 0, month.Location()))
	}
	return cells
}

// MonthlyStats is the rollup shown above the calendar grid
type MonthlyStats struct {
	TasksCompleted int
	ItemsSaved     int
	ActiveDays     int
}

// Stats rolls up the displayed month from the same per-day map used to render
// the grid, so the summary cards can never drift from the cells.
func Stats(days map[string]models.DayActivity, month time.Time) MonthlyStats {
	var stats MonthlyStats
	for _, day := range days {
		if day.Date.Year() != month.Year() || day.Date.Month() != month.Month() {
			continue
		}
		stats.TasksCompleted += day.TasksCompleted
		stats.ItemsSaved += day.ItemsSaved
		if day.TotalActivity > 0 {
			stats.ActiveDays++
		}
	}
	return stats
}

// DayFor looks up the activity entry for the given cell, returning a
// zero-activity entry when the aggregation map has none.
func DayFor(days map[string]models.DayActivity, cell time.Time) models.DayActivity {
	if day, ok := days[activity.DayKey(cell)]; ok {
		return day
	}
	return models.DayActivity{Date: cell}
}

// PrevMonth shifts the reference month back by exactly one calendar month.
// The result is pinned to the 1st so repeated navigation never skips a month.
func PrevMonth(month time.Time) time.Time {
	year, m, _ := month.Date()
	return time.Date(year, m-1, 1, 0, 0, 0, 0, month.Location())
}

// NextMonth shifts the reference month forward by exactly one calendar month
func NextMonth(month time.Time) time.Time {
	year, m, _ := month.Date()
	return time.Date(year, m+1, 1, 0, 0, 0, 0, month.Location())
}
