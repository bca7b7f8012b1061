package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wildcat/spartan/common/db"
	"github.com/wildcat/spartan/common/models"
)

// PictureRepository handles database operations for picture records
type PictureRepository struct {
	db *db.DB
}

// NewPictureRepository creates a new picture repository
func NewPictureRepository(database *db.DB) *PictureRepository {
	return &PictureRepository{db: database}
}

// Upsert inserts or replaces a picture record by its natural key.
func (r *PictureRepository) Upsert(ctx context.Context, picture *models.Picture) error {
	doc, err := json.Marshal(picture)
	if err != nil {
		return fmt.Errorf("failed to encode picture %s: %w", picture.PhotoID, err)
	}

	query := `
		INSERT INTO pictures (photo_id, doc, created_at)
		VALUES ($1, $2, now())
		ON CONFLICT (photo_id) DO UPDATE
		SET doc = EXCLUDED.doc
	`

	if _, err := r.db.Exec(ctx, query, picture.PhotoID, doc); err != nil {
		return fmt.Errorf("failed to upsert picture %s: %w", picture.PhotoID, err)
	}

	return nil
}

// Exists reports whether a picture with the given vendor photo id has
// already been persisted.
func (r *PictureRepository) Exists(ctx context.Context, photoID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM pictures WHERE photo_id = $1
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, photoID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check picture %s: %w", photoID, err)
	}

	return exists, nil
}
