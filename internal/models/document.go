package models

import "time"

// Document is an uploaded PDF stored inline as base64.
// Older records only carry UploadedAt; CreatedAt was added later, so
// either timestamp field may be the populated one.
type Document struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	OriginalName string    `json:"originalName"`
	Description  string    `json:"description"`
	Tags         []string  `json:"tags"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"createdAt,omitzero"`
	UploadedAt   time.Time `json:"uploadedAt,omitzero"`
	Data         string    `json:"data"`
}

// SavedAt returns the timestamp the document entered the vault,
// preferring CreatedAt and falling back to UploadedAt.
func (d *Document) SavedAt() time.Time {
	if !d.CreatedAt.IsZero() {
		return d.CreatedAt
	}
	return d.UploadedAt
}
