package huhforms

import (
	"github.com/charmbracelet/huh"
)

// DocumentForm creates a huh form for importing a PDF. The path field is only
// shown for new documents; metadata edits leave the payload untouched.
func DocumentForm(path, name, description, tags *string, editing bool) *huh.Form {
	fields := []huh.Field{}

	if !editing {
		fields = append(fields,
			huh.NewInput().
				Key("path").
				Title("PDF File").
				Placeholder("/path/to/file.pdf").
				Value(path),
		)
	}

	fields = append(fields,
		huh.NewInput().
			Key("name").
			Title("Display Name").
			Placeholder("Leave empty to use the filename").
			Value(name),
		huh.NewText().
			Key("description").
			Title("Description").
			CharLimit(2000).
			Lines(3).
			Value(description),
		huh.NewInput().
			Key("tags").
			Title("Tags").
			Placeholder("comma, separated, tags").
			Value(tags),
	)

	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
}
