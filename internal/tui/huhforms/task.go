package huhforms

import (
	"github.com/charmbracelet/huh"

	"github.com/soumyasagarnayak/appvault/internal/models"
)

// TaskForm creates a huh form for adding or editing a task
func TaskForm(title, description *string, priority *models.Priority, dueDate *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter task title...").
			Value(title),
		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Enter task description...").
			CharLimit(5000).
			Lines(4).
			Value(description),
		huh.NewSelect[models.Priority]().
			Key("priority").
			Title("Priority").
			Options(
				huh.NewOption("Low", models.PriorityLow),
				huh.NewOption("Medium", models.PriorityMedium),
				huh.NewOption("High", models.PriorityHigh),
			).
			Value(priority),
		huh.NewInput().
			Key("due_date").
			Title("Due Date").
			Placeholder("YYYY-MM-DD (optional)").
			Value(dueDate),
	)).WithShowHelp(false)
}
