package huhforms

import (
	"github.com/charmbracelet/huh"
)

// LinkForm creates a huh form for adding or editing a link.
// The form updates the pointed-to values in place.
func LinkForm(title, url, description, tags *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter link title...").
			Value(title),
		huh.NewInput().
			Key("url").
			Title("URL").
			Placeholder("https://...").
			Value(url),
		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("What is this link about?").
			CharLimit(2000).
			Lines(3).
			Value(description),
		huh.NewInput().
			Key("tags").
			Title("Tags").
			Placeholder("comma, separated, tags").
			Value(tags),
	)).WithShowHelp(false)
}
