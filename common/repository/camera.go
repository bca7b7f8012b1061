package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wildcat/spartan/common/db"
	"github.com/wildcat/spartan/common/models"
)

// CameraRepository handles database operations for camera records
type CameraRepository struct {
	db *db.DB
}

// NewCameraRepository creates a new camera repository
func NewCameraRepository(database *db.DB) *CameraRepository {
	return &CameraRepository{db: database}
}

// Upsert inserts or replaces a camera record by its natural key.
func (r *CameraRepository) Upsert(ctx context.Context, camera *models.Camera) error {
	doc, err := json.Marshal(camera)
	if err != nil {
		return fmt.Errorf("failed to encode camera %s: %w", camera.CameraID, err)
	}

	query := `
		INSERT INTO cameras (camera_id, doc, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (camera_id) DO UPDATE
		SET doc = EXCLUDED.doc, updated_at = now()
	`

	if _, err := r.db.Exec(ctx, query, camera.CameraID, doc); err != nil {
		return fmt.Errorf("failed to upsert camera %s: %w", camera.CameraID, err)
	}

	return nil
}

// List retrieves all camera records, most recently updated first.
func (r *CameraRepository) List(ctx context.Context) ([]*models.Camera, error) {
	query := `
		SELECT doc
		FROM cameras
		ORDER BY updated_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cameras: %w", err)
	}
	defer rows.Close()

	var cameras []*models.Camera
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan camera: %w", err)
		}

		camera := &models.Camera{}
		if err := json.Unmarshal(doc, camera); err != nil {
			return nil, fmt.Errorf("failed to decode camera: %w", err)
		}
		cameras = append(cameras, camera)
	}

	return cameras, rows.Err()
}
