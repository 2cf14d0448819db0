package database

import (
	"context"
	"database/sql"

	"github.com/soumyasagarnayak/appvault/internal/models"
)

// DocumentRepo persists the PDF documents collection wholesale under its store key
type DocumentRepo struct {
	db *sql.DB
}

// GetAll returns every stored document. Missing or malformed data yields
// an empty collection.
func (r *DocumentRepo) GetAll(ctx context.Context) ([]models.Document, error) {
	var docs []models.Document
	if err := loadJSON(ctx, r.db, keyDocuments, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// SaveAll replaces the entire documents collection
func (r *DocumentRepo) SaveAll(ctx context.Context, docs []models.Document) error {
	return saveJSON(ctx, r.db, keyDocuments, docs)
}

// Create appends a document to the collection
func (r *DocumentRepo) Create(ctx context.Context, doc models.Document) error {
	docs, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	docs = append(docs, doc)
	return r.SaveAll(ctx, docs)
}

// Update replaces the stored document with the same ID
func (r *DocumentRepo) Update(ctx context.Context, doc models.Document) error {
	docs, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	for i := range docs {
		if docs[i].ID == doc.ID {
			docs[i] = doc
			return r.SaveAll(ctx, docs)
		}
	}
	return ErrNotFound
}

// Delete removes the document with the given ID
func (r *DocumentRepo) Delete(ctx context.Context, id string) error {
	docs, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	for i := range docs {
		if docs[i].ID == id {
			docs = append(docs[:i], docs[i+1:]...)
			return r.SaveAll(ctx, docs)
		}
	}
	return ErrNotFound
}
