package models

import "time"

// DayActivity is the derived per-day activity record for the calendar.
// It is recomputed from the four stores on every aggregation pass and
// never persisted.
type DayActivity struct {
	Date           time.Time
	TasksCompleted int
	ItemsSaved     int
	TotalActivity  int
}
