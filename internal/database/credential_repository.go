package database

import (
	"context"
	"database/sql"

	"github.com/soumyasagarnayak/appvault/internal/models"
)

// CredentialRepo persists the credentials collection wholesale under its store key.
// Secrets are stored as-is; encryption at rest is an explicit non-goal.
type CredentialRepo struct {
	db *sql.DB
}

// GetAll returns every stored credential. Missing or malformed data
// yields an empty collection.
func (r *CredentialRepo) GetAll(ctx context.Context) ([]models.Credential, error) {
	var creds []models.Credential
	if err := loadJSON(ctx, r.db, keyCredentials, &creds); err != nil {
		return nil, err
	}
	return creds, nil
}

// SaveAll replaces the entire credentials collection
func (r *CredentialRepo) SaveAll(ctx context.Context, creds []models.Credential) error {
	return saveJSON(ctx, r.db, keyCredentials, creds)
}

// Create appends a credential to the collection
func (r *CredentialRepo) Create(ctx context.Context, cred models.Credential) error {
	creds, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	creds = append(creds, cred)
	return r.SaveAll(ctx, creds)
}

// Update replaces the stored credential with the same ID
func (r *CredentialRepo) Update(ctx context.Context, cred models.Credential) error {
	creds, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	for i := range creds {
		if creds[i].ID == cred.ID {
			creds[i] = cred
			return r.SaveAll(ctx, creds)
		}
	}
	return ErrNotFound
}

// Delete removes the credential with the given ID
func (r *CredentialRepo) Delete(ctx context.Context, id string) error {
	creds, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	for i := range creds {
		if creds[i].ID == id {
			creds = append(creds[:i], creds[i+1:]...)
			return r.SaveAll(ctx, creds)
		}
	}
	return ErrNotFound
}
