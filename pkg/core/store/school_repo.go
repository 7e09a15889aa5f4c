package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"facility_economics/pkg/models"
)

// SchoolRepo persists raw school records as JSONB rows keyed by school id.
//
// Schema assumption (managed elsewhere):
//
//	CREATE TABLE IF NOT EXISTS school_records (
//	  id TEXT PRIMARY KEY,
//	  record_json JSONB,
//	  updated_at TIMESTAMPTZ
//	);
type SchoolRepo struct{}

// NewSchoolRepo creates a new repository instance.
func NewSchoolRepo() *SchoolRepo {
	return &SchoolRepo{}
}

// Save upserts one record by school id. Records are validated before
// they hit the table so the engine never sees a malformed row.
func (r *SchoolRepo) Save(ctx context.Context, rec *models.SchoolRecord) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}
	if err := ValidateRecord(rec); err != nil {
		return fmt.Errorf("invalid record %s: %w", rec.ID, err)
	}

	recordJSON, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	query := `
		INSERT INTO school_records (id, record_json, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id)
		DO UPDATE SET
			record_json = EXCLUDED.record_json,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := pool.Exec(ctx, query, rec.ID, recordJSON, time.Now()); err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}
	return nil
}

// LoadAll returns every record in the table, ordered by id for stable
// portfolio iteration.
func (r *SchoolRepo) LoadAll(ctx context.Context) ([]models.SchoolRecord, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	rows, err := pool.Query(ctx, `SELECT record_json FROM school_records ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	defer rows.Close()

	var records []models.SchoolRecord
	for rows.Next() {
		var recordJSON []byte
		if err := rows.Scan(&recordJSON); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		var rec models.SchoolRecord
		if err := json.Unmarshal(recordJSON, &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Load returns one record by school id.
func (r *SchoolRepo) Load(ctx context.Context, id string) (*models.SchoolRecord, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	var recordJSON []byte
	err := pool.QueryRow(ctx, `SELECT record_json FROM school_records WHERE id = $1`, id).Scan(&recordJSON)
	if err != nil {
		return nil, fmt.Errorf("no record found for school %s: %w", id, err)
	}

	var rec models.SchoolRecord
	if err := json.Unmarshal(recordJSON, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return &rec, nil
}
