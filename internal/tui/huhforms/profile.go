package huhforms

import (
	"github.com/charmbracelet/huh"
)

// ProfileForm creates a huh form for editing the vault owner's profile
func ProfileForm(name, email, bio *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("name").
			Title("Full Name").
			Placeholder("Enter your name").
			Value(name),
		huh.NewInput().
			Key("email").
			Title("Email").
			Placeholder("your@email.com").
			Value(email),
		huh.NewText().
			Key("bio").
			Title("Bio").
			Placeholder("Tell us about yourself").
			CharLimit(5000).
			Lines(3).
			Value(bio),
	)).WithShowHelp(false)
}
