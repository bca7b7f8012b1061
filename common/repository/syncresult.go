package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/wildcat/spartan/common/db"
	"github.com/wildcat/spartan/common/models"
)

// SyncResultRepository handles database operations for sync run summaries
type SyncResultRepository struct {
	db *db.DB
}

// NewSyncResultRepository creates a new sync result repository
func NewSyncResultRepository(database *db.DB) *SyncResultRepository {
	return &SyncResultRepository{db: database}
}

// Insert appends a sync result. The log is append-only; rows are never
// updated or deleted by the pipeline.
func (r *SyncResultRepository) Insert(ctx context.Context, result *models.SyncResult) error {
	doc, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode sync result: %w", err)
	}

	query := `
		INSERT INTO sync_results (id, doc, created_at)
		VALUES ($1, $2, now())
	`

	if _, err := r.db.Exec(ctx, query, uuid.New(), doc); err != nil {
		return fmt.Errorf("failed to insert sync result: %w", err)
	}

	return nil
}

// Recent retrieves the most recent sync results, newest first.
func (r *SyncResultRepository) Recent(ctx context.Context, limit int) ([]*models.SyncResult, error) {
	query := `
		SELECT doc
		FROM sync_results
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sync results: %w", err)
	}
	defer rows.Close()

	var results []*models.SyncResult
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan sync result: %w", err)
		}

		result := &models.SyncResult{}
		if err := json.Unmarshal(doc, result); err != nil {
			return nil, fmt.Errorf("failed to decode sync result: %w", err)
		}
		results = append(results, result)
	}

	return results, rows.Err()
}
