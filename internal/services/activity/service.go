// Package activity derives per-calendar-day activity counts from the four
// record stores. The aggregation is a pure projection: it is recomputed from
// scratch on every pass and holds no state of its own.
package activity

import (
	"time"

	"github.com/soumyasagarnayak/appvault/internal/models"
)

// dayFormat is the locale-independent calendar-day identity used as the
// aggregation key. Day boundaries follow the reference date's location.
const dayFormat = "2006-01-02"

// DayKey returns the calendar-day key for t
func DayKey(t time.Time) string {
	return t.Format(dayFormat)
}

// Snapshot is a read-only view of the four record stores taken for one
// aggregation pass.
type Snapshot struct {
	Links       []models.Link
	Documents   []models.Document
	Credentials []models.Credential
	Tasks       []models.Task
}

// Window returns the inclusive day range the aggregator covers for the given
// reference date: the first day of the month two months before ref through the
// last day of the month two months after. time.Date normalizes out-of-range
// months, so year boundaries roll correctly in both directions.
func Window(ref time.Time) (start, end time.Time) {
	year, month, _ := ref.Date()
	start = time.Date(year, month-2, 1, 0, 0, 0, 0, ref.Location())
	// day zero of month+3 is the last day of month+2
	end = time.Date(year, month+3, 0, 0, 0, 0, 0, ref.Location())
	return start, end
}

// Aggregate produces the complete per-day activity mapping for the window
// around ref. Every day in the window has an entry, including zero-activity
// days. Records without a usable timestamp are excluded from all buckets.
func Aggregate(ref time.Time, snap Snapshot) map[string]models.DayActivity {
	loc := ref.Location()

	// Pre-bucket records by day key so the walk over the window is O(days).
	completed := make(map[string]int)
	for i := range snap.Tasks {
		task := &snap.Tasks[i]
		if !task.Completed || task.CompletedAt == nil {
			continue
		}
		completed[DayKey(task.CompletedAt.In(loc))]++
	}

	saved := make(map[string]int)
	for i := range snap.Links {
		if created := snap.Links[i].CreatedAt; !created.IsZero() {
			saved[DayKey(created.In(loc))]++
		}
	}
	for i := range snap.Documents {
		if at := snap.Documents[i].SavedAt(); !at.IsZero() {
			saved[DayKey(at.In(loc))]++
		}
	}
	for i := range snap.Credentials {
		if created := snap.Credentials[i].CreatedAt; !created.IsZero() {
			saved[DayKey(created.In(loc))]++
		}
	}

	days := make(map[string]models.DayActivity)
	start, end := Window(ref)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := DayKey(d)
		tasksCompleted := completed[key]
		itemsSaved := saved[key]
		days[key] = models.DayActivity{
			Date:           d,
			TasksCompleted: tasksCompleted,
			ItemsSaved:     itemsSaved,
			TotalActivity:  tasksCompleted + itemsSaved,
		}
	}
	return days
}
