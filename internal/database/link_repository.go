package database

import (
	"context"
	"database/sql"

	"github.com/soumyasagarnayak/appvault/internal/models"
)

// LinkRepo persists the links collection wholesale under its store key
type LinkRepo struct {
	db *sql.DB
}

// GetAll returns every stored link. Missing or malformed data yields an
// empty collection.
func (r *LinkRepo) GetAll(ctx context.Context) ([]models.Link, error) {
	var links []models.Link
	if err := loadJSON(ctx, r.db, keyLinks, &links); err != nil {
		return nil, err
	}
	return links, nil
}

// SaveAll replaces the entire links collection
func (r *LinkRepo) SaveAll(ctx context.Context, links []models.Link) error {
	return saveJSON(ctx, r.db, keyLinks, links)
}

// Create appends a link to the collection
func (r *LinkRepo) Create(ctx context.Context, link models.Link) error {
	links, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	links = append(links, link)
	return r.SaveAll(ctx, links)
}

// Update replaces the stored link with the same ID
func (r *LinkRepo) Update(ctx context.Context, link models.Link) error {
	links, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	for i := range links {
		if links[i].ID == link.ID {
			links[i] = link
			return r.SaveAll(ctx, links)
		}
	}
	return ErrNotFound
}

// Delete removes the link with the given ID
func (r *LinkRepo) Delete(ctx context.Context, id string) error {
	links, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	for i := range links {
		if links[i].ID == id {
			links = append(links[:i], links[i+1:]...)
			return r.SaveAll(ctx, links)
		}
	}
	return ErrNotFound
}
