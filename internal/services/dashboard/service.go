// Package dashboard computes the landing-view numbers: per-store counts,
// today's completions, the streak, and the quote of the day.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/soumyasagarnayak/appvault/internal/database"
	"github.com/soumyasagarnayak/appvault/internal/services/activity"
)

// Stats is the set of counters shown on the dashboard cards
type Stats struct {
	Links          int
	Documents      int
	Credentials    int
	Tasks          int
	CompletedToday int
	Streak         int
}

// Service defines the dashboard read operations
type Service interface {
	Stats(ctx context.Context, now time.Time) (Stats, error)
	QuoteOfDay(ctx context.Context, now time.Time) (string, error)
}

type service struct {
	repo database.DataStore
}

// NewService creates a new dashboard service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// Stats counts each collection and today's completed tasks. Completions are
// counted by completion timestamp, not creation time.
func (s *service) Stats(ctx context.Context, now time.Time) (Stats, error) {
	links, err := s.repo.GetAllLinks(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to load links: %w", err)
	}
	docs, err := s.repo.GetAllDocuments(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to load documents: %w", err)
	}
	creds, err := s.repo.GetAllCredentials(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to load credentials: %w", err)
	}
	tasks, err := s.repo.GetAllTasks(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to load tasks: %w", err)
	}
	streak, err := s.repo.GetStreak(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to load streak: %w", err)
	}

	today := activity.DayKey(now)
	completedToday := 0
	for i := range tasks {
		t := &tasks[i]
		if t.Completed && t.CompletedAt != nil && activity.DayKey(t.CompletedAt.In(now.Location())) == today {
			completedToday++
		}
	}

	return Stats{
		Links:          len(links),
		Documents:      len(docs),
		Credentials:    len(creds),
		Tasks:          len(tasks),
		CompletedToday: completedToday,
		Streak:         streak,
	}, nil
}

// QuoteOfDay returns the cached quote when it was cached today, otherwise
// picks the day's quote, caches it with today's date string, and returns it.
func (s *service) QuoteOfDay(ctx context.Context, now time.Time) (string, error) {
	today := activity.DayKey(now)
	quote, date, err := s.repo.GetDailyQuote(ctx)
	if err != nil {
		return "", err
	}
	if date == today && quote != "" {
		return quote, nil
	}

	quote = quotes[now.Day()%len(quotes)]
	if err := s.repo.SetDailyQuote(ctx, quote, today); err != nil {
		return "", fmt.Errorf("failed to cache quote: %w", err)
	}
	return quote, nil
}
