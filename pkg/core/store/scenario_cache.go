package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"facility_economics/pkg/core/scenario"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ScenarioCache stores scenario-run snapshots keyed by RunID.
// Hybrid: DB (primary) + file system (fallback/local). Snapshots are
// derived data; losing them only costs a recompute.
type ScenarioCache struct {
	pool    *pgxpool.Pool
	fileDir string
}

// NewScenarioCache creates a cache. If pool is nil it falls back to a
// file directory; an empty dir defaults to .cache/scenarios.
func NewScenarioCache(pool *pgxpool.Pool, dir string) *ScenarioCache {
	if pool == nil && dir == "" {
		dir = filepath.Join(".cache", "scenarios")
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Printf("[WARNING] Check ScenarioCache dir: %v\n", err)
		}
	}
	return &ScenarioCache{pool: pool, fileDir: dir}
}

// snapshotEntry is the persisted wrapper around one run.
type snapshotEntry struct {
	RunID   string           `json:"run_id"`
	SavedAt time.Time        `json:"saved_at"`
	Result  *scenario.Result `json:"result"`
}

// Save persists one scenario result.
//
// Schema assumption:
//
//	CREATE TABLE IF NOT EXISTS scenario_snapshots (
//	  run_id TEXT PRIMARY KEY,
//	  snapshot_json JSONB,
//	  created_at TIMESTAMPTZ
//	);
func (c *ScenarioCache) Save(ctx context.Context, res *scenario.Result) error {
	entry := snapshotEntry{RunID: res.RunID, SavedAt: time.Now(), Result: res}
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if c.pool != nil {
		query := `
			INSERT INTO scenario_snapshots (run_id, snapshot_json, created_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (run_id) DO UPDATE SET
				snapshot_json = EXCLUDED.snapshot_json,
				created_at = EXCLUDED.created_at;
		`
		if _, err := c.pool.Exec(ctx, query, res.RunID, data, entry.SavedAt); err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}
		return nil
	}

	if c.fileDir != "" {
		path := c.runPath(res.RunID)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write snapshot file: %w", err)
		}
	}
	return nil
}

// Get retrieves one snapshot by run id. A miss returns (nil, nil).
func (c *ScenarioCache) Get(ctx context.Context, runID string) (*scenario.Result, error) {
	if c.pool != nil {
		var data []byte
		err := c.pool.QueryRow(ctx,
			`SELECT snapshot_json FROM scenario_snapshots WHERE run_id = $1`, runID).Scan(&data)
		if err != nil {
			return nil, nil // miss
		}
		return decodeSnapshot(data)
	}

	if c.fileDir != "" {
		data, err := os.ReadFile(c.runPath(runID))
		if err != nil {
			return nil, nil // miss
		}
		return decodeSnapshot(data)
	}
	return nil, nil
}

func decodeSnapshot(data []byte) (*scenario.Result, error) {
	var entry snapshotEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return entry.Result, nil
}

func (c *ScenarioCache) runPath(runID string) string {
	return filepath.Join(c.fileDir, runID+".json")
}
