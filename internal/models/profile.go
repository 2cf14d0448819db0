package models

// Profile holds the vault owner's display details.
// Avatar is a base64-encoded image chosen from the profile dialog.
type Profile struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Bio    string `json:"bio"`
	Avatar string `json:"avatar"`
}
