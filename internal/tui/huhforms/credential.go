package huhforms

import (
	"github.com/charmbracelet/huh"
)

// CredentialForm creates a huh form for adding or editing a credential.
// The secret input is masked; strength is recomputed on save, not here.
func CredentialForm(title, website, username, secret, notes *string) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter credential title...").
			Value(title),
		huh.NewInput().
			Key("website").
			Title("Website").
			Placeholder("example.com").
			Value(website),
		huh.NewInput().
			Key("username").
			Title("Username").
			Placeholder("user@example.com").
			Value(username),
		huh.NewInput().
			Key("password").
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(secret),
		huh.NewText().
			Key("notes").
			Title("Notes").
			CharLimit(2000).
			Lines(3).
			Value(notes),
	)).WithShowHelp(false)
}
